package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/patch"
	"estaciona-api/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid payment status")
	ErrNegativeAmount = errors.New("payment amount cannot be negative")
)

type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        money.Amount
	method        Method
	status        Status
	providerRef   *string
	createdAt     time.Time
}

// NewPayment records a manual payment; method defaults to "qr".
func NewPayment(reservationID uuid.UUID, amount money.Amount, method Method, status Status, providerRef *string, now time.Time) (*Payment, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(method.String()) == "" {
		method = MethodQR
	}
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		status:        status,
		providerRef:   providerRef,
		createdAt:     now,
	}, nil
}

// NewSettlement is the paid record written by the pay-reservation flow.
// Wallet payments always carry the wallet reference; other methods default
// to "QR-{reservation id}".
func NewSettlement(reservationID uuid.UUID, amount money.Amount, method Method, providerRef *string, now time.Time) (*Payment, error) {
	if method == "" {
		method = MethodQRApp
	}
	ref := fmt.Sprintf("QR-%s", reservationID)
	if providerRef != nil && *providerRef != "" {
		ref = *providerRef
	}
	if method.IsWallet() {
		ref = WalletProviderRef
	}
	return NewPayment(reservationID, amount, method, StatusPaid, &ref, now)
}

func ReconstructPayment(
	id, reservationID uuid.UUID,
	amount money.Amount,
	method Method,
	status Status,
	providerRef *string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		status:        status,
		providerRef:   providerRef,
		createdAt:     createdAt,
	}
}

type Attributes struct {
	Amount      money.Amount
	Method      string
	Status      string
	ProviderRef *string
}

func (p *Payment) Attributes() Attributes {
	return Attributes{
		Amount:      p.amount,
		Method:      p.method.String(),
		Status:      p.status.String(),
		ProviderRef: ptr.Clone(p.providerRef),
	}
}

func (p *Payment) Update(changes any) error {
	attrs := p.Attributes()
	if err := patch.Apply(&attrs, changes); err != nil {
		return err
	}
	if attrs.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	status := Status(attrs.Status)
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	p.amount = attrs.Amount
	p.method = Method(attrs.Method)
	p.status = status
	p.providerRef = attrs.ProviderRef
	return nil
}

// SettlesReservation reports whether saving this payment marks its
// reservation as paid.
func (p *Payment) SettlesReservation() bool {
	return p.status == StatusPaid
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) Amount() money.Amount     { return p.amount }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) ProviderRef() *string     { return p.providerRef }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
