package converter

import (
	"estaciona-api/internal/domain/payment"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/pgconv"
)

func PaymentFromRow(row pgstore.Payments) *payment.Payment {
	return payment.ReconstructPayment(
		row.ID,
		row.ReservationID,
		money.FromCents(row.AmountCents),
		payment.Method(row.Method),
		payment.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.ProviderRef),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func PaymentToCreateParams(p *payment.Payment) pgstore.CreatePaymentParams {
	return pgstore.CreatePaymentParams{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		AmountCents:   p.Amount().Cents(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		ProviderRef:   pgconv.StringPtrToPgtype(p.ProviderRef()),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PaymentToUpdateParams(p *payment.Payment) pgstore.UpdatePaymentParams {
	return pgstore.UpdatePaymentParams{
		ID:          p.ID(),
		AmountCents: p.Amount().Cents(),
		Method:      p.Method().String(),
		Status:      p.Status().String(),
		ProviderRef: pgconv.StringPtrToPgtype(p.ProviderRef()),
	}
}
