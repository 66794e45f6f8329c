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

type ParkingReadQueries interface {
	GetParkingByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Parkings, error)
	ListParkings(ctx context.Context, db pgstore.DBTX) ([]pgstore.Parkings, error)
	SearchParkings(ctx context.Context, db pgstore.DBTX, arg pgstore.SearchParkingsParams) ([]pgstore.Parkings, error)
	ListParkingsByOwner(ctx context.Context, db pgstore.DBTX, ownerID uuid.UUID) ([]pgstore.Parkings, error)
}

type ParkingReadStore struct {
	queries ParkingReadQueries
	db      pgstore.DBTX
	policy  *tz.Policy
}

func NewParkingReadStore(queries ParkingReadQueries, db pgstore.DBTX, policy *tz.Policy) *ParkingReadStore {
	return &ParkingReadStore{
		queries: queries,
		db:      db,
		policy:  policy,
	}
}

func (r *ParkingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ParkingView, error) {
	row, err := r.queries.GetParkingByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr(err, "parking not found", "failed to find parking by ID")
	}
	return r.toView(row), nil
}

func (r *ParkingReadStore) List(ctx context.Context) ([]*queries.ParkingView, error) {
	rows, err := r.queries.ListParkings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parkings", err)
	}
	return mapRows(rows, r.toView), nil
}

func (r *ParkingReadStore) Search(ctx context.Context, query string, availableOnly bool) ([]*queries.ParkingView, error) {
	rows, err := r.queries.SearchParkings(ctx, r.db, pgstore.SearchParkingsParams{
		Query:         query,
		AvailableOnly: availableOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search parkings", err)
	}
	return mapRows(rows, r.toView), nil
}

func (r *ParkingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ParkingView, error) {
	rows, err := r.queries.ListParkingsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parkings by owner", err)
	}
	return mapRows(rows, r.toView), nil
}

func (r *ParkingReadStore) toView(row pgstore.Parkings) *queries.ParkingView {
	return &queries.ParkingView{
		ID:           row.ID,
		OwnerID:      pgconv.UUIDPtrFromPgtype(row.OwnerID),
		Name:         row.Name,
		Address:      pgconv.StringPtrFromPgtype(row.Address),
		District:     pgconv.StringPtrFromPgtype(row.District),
		Lat:          row.Lat,
		Lng:          row.Lng,
		PricePerHour: money.FromCents(row.PricePerHourCents),
		Capacity:     int(row.Capacity),
		Available:    int(row.Available),
		Description:  pgconv.StringPtrFromPgtype(row.Description),
		Hours:        pgconv.StringPtrFromPgtype(row.Hours),
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageUrl),
		CreatedAt:    r.policy.Normalize(pgconv.TimeFromPgtype(row.CreatedAt)),
	}
}
