package repository

import (
	"context"

	"estaciona-api/internal/domain/payment"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db pgstore.DBTX, arg pgstore.CreatePaymentParams) (pgstore.Payments, error)
	UpdatePayment(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdatePaymentParams) (int64, error)
	DeletePayment(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx pgstore.DBTX, p *payment.Payment) error {
	if _, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, tx pgstore.DBTX, p *payment.Payment) error {
	rows, err := r.queries.UpdatePayment(ctx, tx, converter.PaymentToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	return affected(rows, "payment not found")
}

func (r *PaymentRepository) Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeletePayment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	return affected(rows, "payment not found")
}
