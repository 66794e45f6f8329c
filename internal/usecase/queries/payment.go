package queries

import (
	"context"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	List(ctx context.Context) ([]*PaymentView, error)
}

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	List(ctx context.Context) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *paymentQueriesImpl) List(ctx context.Context) ([]*PaymentView, error) {
	return q.readStore.List(ctx)
}
