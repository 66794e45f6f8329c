package readstore

import (
	"context"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/pgconv"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Reservations, error)
	ListReservations(ctx context.Context, db pgstore.DBTX) ([]pgstore.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgstore.DBTX
	policy  *tz.Policy
}

func NewReservationReadStore(queries ReservationReadQueries, db pgstore.DBTX, policy *tz.Policy) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		policy:  policy,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr(err, "reservation not found", "failed to find reservation by ID")
	}
	return r.toView(row), nil
}

func (r *ReservationReadStore) List(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return mapRows(rows, r.toView), nil
}

func (r *ReservationReadStore) toView(row pgstore.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          row.ID,
		ParkingID:   row.ParkingID,
		UserID:      row.UserID,
		StartTime:   r.policy.Normalize(pgconv.TimeFromPgtype(row.StartTime)),
		EndTime:     r.policy.Normalize(pgconv.TimeFromPgtype(row.EndTime)),
		Status:      row.Status,
		TotalAmount: pgconv.AmountPtrFromPgtype(row.TotalAmountCents),
		CreatedAt:   r.policy.Normalize(pgconv.TimeFromPgtype(row.CreatedAt)),
	}
}
