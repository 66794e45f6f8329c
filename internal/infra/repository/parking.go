package repository

import (
	"context"

	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/repository/converter"
	"estaciona-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ParkingWriteQueries interface {
	CreateParking(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateParkingParams) (pgstore.Parkings, error)
	GetParkingForUpdate(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Parkings, error)
	UpdateParking(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdateParkingParams) (int64, error)
	DeleteParking(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
	ReserveParkingSlot(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
	ReleaseParkingSlot(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
	AdjustParkingAvailable(ctx context.Context, db pgstore.DBTX, arg pgstore.AdjustParkingAvailableParams) (int32, error)
}

type ParkingRepository struct {
	queries ParkingWriteQueries
}

func NewParkingRepository(queries ParkingWriteQueries) *ParkingRepository {
	return &ParkingRepository{queries: queries}
}

func (r *ParkingRepository) Create(ctx context.Context, tx pgstore.DBTX, p *parking.Parking) error {
	if _, err := r.queries.CreateParking(ctx, tx, converter.ParkingToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create parking", err)
	}
	return nil
}

// FindForUpdate locks the row so counter writes of concurrent transactions
// are not overwritten by a stale copy.
func (r *ParkingRepository) FindForUpdate(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (*parking.Parking, error) {
	row, err := r.queries.GetParkingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock parking", err)
	}
	return converter.ParkingFromRow(row), nil
}

func (r *ParkingRepository) Update(ctx context.Context, tx pgstore.DBTX, p *parking.Parking) error {
	rows, err := r.queries.UpdateParking(ctx, tx, converter.ParkingToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update parking", err)
	}
	return affected(rows, "parking not found")
}

func (r *ParkingRepository) Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteParking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete parking", err)
	}
	return affected(rows, "parking not found")
}

// ReserveSlot is a conditional decrement: the row only changes while
// available > 0, so concurrent callers can never drive it negative.
func (r *ParkingRepository) ReserveSlot(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (bool, error) {
	rows, err := r.queries.ReserveParkingSlot(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve parking slot", err)
	}
	return rows == 1, nil
}

// ReleaseSlot gives a unit back, capped at capacity. A full parking is a no-op.
func (r *ParkingRepository) ReleaseSlot(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	if _, err := r.queries.ReleaseParkingSlot(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to release parking slot", err)
	}
	return nil
}

func (r *ParkingRepository) AdjustAvailable(ctx context.Context, tx pgstore.DBTX, id uuid.UUID, delta int) (int, error) {
	available, err := r.queries.AdjustParkingAvailable(ctx, tx, pgstore.AdjustParkingAvailableParams{
		ID:    id,
		Delta: parking.BoundDelta(delta),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("parking not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to adjust parking availability", err)
	}
	return int(available), nil
}
