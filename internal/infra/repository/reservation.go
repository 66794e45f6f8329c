package repository

import (
	"context"

	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/repository/converter"
	"estaciona-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateReservationParams) (pgstore.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Reservations, error)
	UpdateReservation(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdateReservationParams) (int64, error)
	SetReservationStatus(ctx context.Context, db pgstore.DBTX, arg pgstore.SetReservationStatusParams) (int64, error)
	DeleteReservation(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgstore.DBTX, res *reservation.Reservation) error {
	if _, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx pgstore.DBTX, res *reservation.Reservation) error {
	rows, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return affected(rows, "reservation not found")
}

func (r *ReservationRepository) SetStatus(ctx context.Context, tx pgstore.DBTX, id uuid.UUID, status reservation.Status) error {
	rows, err := r.queries.SetReservationStatus(ctx, tx, pgstore.SetReservationStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set reservation status", err)
	}
	return affected(rows, "reservation not found")
}

func (r *ReservationRepository) Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	return affected(rows, "reservation not found")
}
