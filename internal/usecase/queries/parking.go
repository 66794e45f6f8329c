package queries

import (
	"context"
	"strings"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrParkingNotFound = errs.New("parking not found")

type ParkingSearch struct {
	Query         string
	AvailableOnly bool
}

type ParkingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ParkingView, error)
	List(ctx context.Context) ([]*ParkingView, error)
	Search(ctx context.Context, search ParkingSearch) ([]*ParkingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ParkingView, error)
}

type ParkingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ParkingView, error)
	List(ctx context.Context) ([]*ParkingView, error)
	Search(ctx context.Context, query string, availableOnly bool) ([]*ParkingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ParkingView, error)
}

type parkingQueriesImpl struct {
	readStore ParkingReadStore
}

func NewParkingQueries(readStore ParkingReadStore) ParkingQueries {
	return &parkingQueriesImpl{readStore: readStore}
}

func (q *parkingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ParkingView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrParkingNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *parkingQueriesImpl) List(ctx context.Context) ([]*ParkingView, error) {
	return q.readStore.List(ctx)
}

func (q *parkingQueriesImpl) Search(ctx context.Context, search ParkingSearch) ([]*ParkingView, error) {
	return q.readStore.Search(ctx, strings.TrimSpace(search.Query), search.AvailableOnly)
}

func (q *parkingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ParkingView, error) {
	return q.readStore.ListByOwner(ctx, ownerID)
}
