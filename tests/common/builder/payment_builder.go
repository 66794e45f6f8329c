//go:build unit || e2e

package builder

import (
	"time"

	"estaciona-api/internal/domain/payment"
	reqdto "estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentBuilder struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        money.Amount
	Method        string
	Status        string
	ProviderRef   *string
	CreatedAt     time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		Amount:        money.FromCents(1000),
		Method:        "qr",
		Status:        "pending",
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildDomain() *payment.Payment {
	return payment.ReconstructPayment(
		p.ID,
		p.ReservationID,
		p.Amount,
		payment.Method(p.Method),
		payment.Status(p.Status),
		p.ProviderRef,
		p.CreatedAt,
	)
}

func (p *PaymentBuilder) BuildInfra() pgstore.Payments {
	var ref pgtype.Text
	if p.ProviderRef != nil {
		ref = pgtype.Text{String: *p.ProviderRef, Valid: true}
	}
	return pgstore.Payments{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		AmountCents:   p.Amount.Cents(),
		Method:        p.Method,
		Status:        p.Status,
		ProviderRef:   ref,
		CreatedAt:     pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}

func (p *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        p.Status,
		ProviderRef:   p.ProviderRef,
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PaymentBuilder) BuildCreateRequestDTO() reqdto.CreatePaymentRequest {
	amount := p.Amount
	return reqdto.CreatePaymentRequest{
		ReservationID: p.ReservationID,
		Amount:        &amount,
		Method:        p.Method,
		Status:        p.Status,
		ProviderRef:   p.ProviderRef,
	}
}

func (p *PaymentBuilder) AsPaid() *PaymentBuilder {
	p.Status = "paid"
	return p
}
