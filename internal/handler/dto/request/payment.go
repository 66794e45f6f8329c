package request

import (
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	ReservationID uuid.UUID     `json:"reservation_id" binding:"required"`
	Amount        *money.Amount `json:"amount" binding:"required" swaggertype:"string" example:"10.00"`
	Method        string        `json:"method,omitempty"`
	Status        string        `json:"status,omitempty" binding:"omitempty,oneof=pending paid failed"`
	ProviderRef   *string       `json:"provider_ref,omitempty"`
}

func (r CreatePaymentRequest) ToCommand() commands.CreatePaymentInput {
	return commands.CreatePaymentInput{
		ReservationID: r.ReservationID,
		Amount:        r.Amount,
		Method:        r.Method,
		Status:        r.Status,
		ProviderRef:   r.ProviderRef,
	}
}

type UpdatePaymentRequest struct {
	Amount      *money.Amount `json:"amount,omitempty" swaggertype:"string" example:"10.00"`
	Method      *string       `json:"method,omitempty"`
	Status      *string       `json:"status,omitempty" binding:"omitempty,oneof=pending paid failed"`
	ProviderRef *string       `json:"provider_ref,omitempty"`
}

func (r UpdatePaymentRequest) ToCommand() commands.UpdatePaymentInput {
	return commands.UpdatePaymentInput{
		Amount:      r.Amount,
		Method:      r.Method,
		Status:      r.Status,
		ProviderRef: r.ProviderRef,
	}
}

// PayReservationRequest: method "saldo" debits the wallet; anything else is
// recorded as an external payment.
type PayReservationRequest struct {
	Method      string  `json:"method,omitempty" example:"saldo"`
	ProviderRef *string `json:"provider_ref,omitempty"`
}

func (r PayReservationRequest) ToCommand() commands.PayReservationInput {
	return commands.PayReservationInput{Method: r.Method, ProviderRef: r.ProviderRef}
}
