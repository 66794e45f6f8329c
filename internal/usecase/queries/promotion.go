package queries

import (
	"context"
	"time"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPromotionNotFound = errs.New("promotion not found")

type PromotionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	List(ctx context.Context) ([]*PromotionView, error)
	// ListCurrentByParking returns active promotions that have not ended yet.
	ListCurrentByParking(ctx context.Context, parkingID uuid.UUID) ([]*PromotionView, error)
}

type PromotionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	List(ctx context.Context) ([]*PromotionView, error)
	ListCurrentByParking(ctx context.Context, parkingID uuid.UUID, now time.Time) ([]*PromotionView, error)
}

type promotionQueriesImpl struct {
	readStore PromotionReadStore
	clock     clock.Clock
}

func NewPromotionQueries(readStore PromotionReadStore, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{readStore: readStore, clock: clk}
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *promotionQueriesImpl) List(ctx context.Context) ([]*PromotionView, error) {
	return q.readStore.List(ctx)
}

func (q *promotionQueriesImpl) ListCurrentByParking(ctx context.Context, parkingID uuid.UUID) ([]*PromotionView, error) {
	return q.readStore.ListCurrentByParking(ctx, parkingID, q.clock.Now())
}
