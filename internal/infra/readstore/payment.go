package readstore

import (
	"context"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/pgconv"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	GetPaymentByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Payments, error)
	ListPayments(ctx context.Context, db pgstore.DBTX) ([]pgstore.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      pgstore.DBTX
	policy  *tz.Policy
}

func NewPaymentReadStore(queries PaymentReadQueries, db pgstore.DBTX, policy *tz.Policy) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
		policy:  policy,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr(err, "payment not found", "failed to find payment by ID")
	}
	return r.toView(row), nil
}

func (r *PaymentReadStore) List(ctx context.Context) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPayments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	return mapRows(rows, r.toView), nil
}

func (r *PaymentReadStore) toView(row pgstore.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		Amount:        money.FromCents(row.AmountCents),
		Method:        row.Method,
		Status:        row.Status,
		ProviderRef:   pgconv.StringPtrFromPgtype(row.ProviderRef),
		CreatedAt:     r.policy.Normalize(pgconv.TimeFromPgtype(row.CreatedAt)),
	}
}
