package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, parking_id, user_id, start_time, end_time, status, total_amount_cents, created_at`

func scanReservation(row pgx.Row) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.ParkingID,
		&i.UserID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.TotalAmountCents,
		&i.CreatedAt,
	)
	return i, err
}

const createReservation = `
INSERT INTO reservations (id, parking_id, user_id, start_time, end_time, status, total_amount_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + reservationColumns

type CreateReservationParams struct {
	ID               uuid.UUID
	ParkingID        uuid.UUID
	UserID           uuid.UUID
	StartTime        pgtype.Timestamptz
	EndTime          pgtype.Timestamptz
	Status           string
	TotalAmountCents pgtype.Int8
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.ParkingID,
		arg.UserID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.TotalAmountCents,
		arg.CreatedAt,
	)
	return scanReservation(row)
}

const getReservationByID = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

// Row lock for read-modify-write inside a transaction; concurrent updates,
// deletes and payments of the same reservation serialize here.
const getReservationForUpdate = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, id))
}

const listReservations = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC, id DESC`

func (q *Queries) ListReservations(ctx context.Context, db DBTX) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservations)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanReservation)
}

const updateReservation = `
UPDATE reservations
SET start_time = $2,
    end_time = $3,
    status = $4,
    total_amount_cents = $5
WHERE id = $1`

type UpdateReservationParams struct {
	ID               uuid.UUID
	StartTime        pgtype.Timestamptz
	EndTime          pgtype.Timestamptz
	Status           string
	TotalAmountCents pgtype.Int8
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.TotalAmountCents,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const setReservationStatus = `UPDATE reservations SET status = $2 WHERE id = $1`

type SetReservationStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) SetReservationStatus(ctx context.Context, db DBTX, arg SetReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, setReservationStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservation = `DELETE FROM reservations WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// Half-open overlap: existing.start < new.end AND existing.end > new.start.
const countOverlappingReservations = `
SELECT count(*)
FROM reservations
WHERE user_id = $1
  AND parking_id = $2
  AND status = ANY($3::text[])
  AND start_time < $5
  AND end_time > $4
  AND ($6::uuid IS NULL OR id <> $6::uuid)`

type CountOverlappingReservationsParams struct {
	UserID    uuid.UUID
	ParkingID uuid.UUID
	Statuses  []string
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	ExcludeID pgtype.UUID
}

func (q *Queries) CountOverlappingReservations(ctx context.Context, db DBTX, arg CountOverlappingReservationsParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countOverlappingReservations,
		arg.UserID,
		arg.ParkingID,
		arg.Statuses,
		arg.StartTime,
		arg.EndTime,
		arg.ExcludeID,
	).Scan(&count)
	return count, err
}

const countReservations = `SELECT count(*) FROM reservations`

func (q *Queries) CountReservations(ctx context.Context, db DBTX) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservations).Scan(&count)
	return count, err
}
