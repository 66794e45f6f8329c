package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const parkingColumns = `id, owner_id, name, address, district, lat, lng, price_per_hour_cents, capacity, available, hours, image_url, description, created_at`

func scanParking(row pgx.Row) (Parkings, error) {
	var i Parkings
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Address,
		&i.District,
		&i.Lat,
		&i.Lng,
		&i.PricePerHourCents,
		&i.Capacity,
		&i.Available,
		&i.Hours,
		&i.ImageUrl,
		&i.Description,
		&i.CreatedAt,
	)
	return i, err
}

const createParking = `
INSERT INTO parkings (id, owner_id, name, address, district, lat, lng, price_per_hour_cents, capacity, available, hours, image_url, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + parkingColumns

type CreateParkingParams struct {
	ID                uuid.UUID
	OwnerID           pgtype.UUID
	Name              string
	Address           pgtype.Text
	District          pgtype.Text
	Lat               float64
	Lng               float64
	PricePerHourCents int64
	Capacity          int32
	Available         int32
	Hours             pgtype.Text
	ImageUrl          pgtype.Text
	Description       pgtype.Text
	CreatedAt         pgtype.Timestamptz
}

func (q *Queries) CreateParking(ctx context.Context, db DBTX, arg CreateParkingParams) (Parkings, error) {
	row := db.QueryRow(ctx, createParking,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Address,
		arg.District,
		arg.Lat,
		arg.Lng,
		arg.PricePerHourCents,
		arg.Capacity,
		arg.Available,
		arg.Hours,
		arg.ImageUrl,
		arg.Description,
		arg.CreatedAt,
	)
	return scanParking(row)
}

const getParkingByID = `SELECT ` + parkingColumns + ` FROM parkings WHERE id = $1`

func (q *Queries) GetParkingByID(ctx context.Context, db DBTX, id uuid.UUID) (Parkings, error) {
	return scanParking(db.QueryRow(ctx, getParkingByID, id))
}

const getParkingForUpdate = `SELECT ` + parkingColumns + ` FROM parkings WHERE id = $1 FOR UPDATE`

func (q *Queries) GetParkingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Parkings, error) {
	return scanParking(db.QueryRow(ctx, getParkingForUpdate, id))
}

const listParkings = `SELECT ` + parkingColumns + ` FROM parkings ORDER BY created_at DESC, id DESC`

func (q *Queries) ListParkings(ctx context.Context, db DBTX) ([]Parkings, error) {
	rows, err := db.Query(ctx, listParkings)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanParking)
}

const searchParkings = `
SELECT ` + parkingColumns + `
FROM parkings
WHERE ($1::text = ''
       OR name ILIKE '%' || $1::text || '%'
       OR address ILIKE '%' || $1::text || '%'
       OR district ILIKE '%' || $1::text || '%')
  AND (NOT $2::boolean OR available > 0)
ORDER BY price_per_hour_cents ASC, name ASC`

type SearchParkingsParams struct {
	Query         string
	AvailableOnly bool
}

func (q *Queries) SearchParkings(ctx context.Context, db DBTX, arg SearchParkingsParams) ([]Parkings, error) {
	rows, err := db.Query(ctx, searchParkings, arg.Query, arg.AvailableOnly)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanParking)
}

const listParkingsByOwner = `SELECT ` + parkingColumns + ` FROM parkings WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

func (q *Queries) ListParkingsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Parkings, error) {
	rows, err := db.Query(ctx, listParkingsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanParking)
}

const updateParking = `
UPDATE parkings
SET owner_id = $2,
    name = $3,
    address = $4,
    district = $5,
    lat = $6,
    lng = $7,
    price_per_hour_cents = $8,
    capacity = $9,
    available = $10,
    hours = $11,
    image_url = $12,
    description = $13
WHERE id = $1`

type UpdateParkingParams struct {
	ID                uuid.UUID
	OwnerID           pgtype.UUID
	Name              string
	Address           pgtype.Text
	District          pgtype.Text
	Lat               float64
	Lng               float64
	PricePerHourCents int64
	Capacity          int32
	Available         int32
	Hours             pgtype.Text
	ImageUrl          pgtype.Text
	Description       pgtype.Text
}

func (q *Queries) UpdateParking(ctx context.Context, db DBTX, arg UpdateParkingParams) (int64, error) {
	result, err := db.Exec(ctx, updateParking,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Address,
		arg.District,
		arg.Lat,
		arg.Lng,
		arg.PricePerHourCents,
		arg.Capacity,
		arg.Available,
		arg.Hours,
		arg.ImageUrl,
		arg.Description,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteParking = `DELETE FROM parkings WHERE id = $1`

func (q *Queries) DeleteParking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteParking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// Zero affected rows means the parking is missing or already full.
const reserveParkingSlot = `
UPDATE parkings
SET available = available - 1
WHERE id = $1 AND available > 0`

func (q *Queries) ReserveParkingSlot(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, reserveParkingSlot, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const releaseParkingSlot = `
UPDATE parkings
SET available = LEAST(available + 1, capacity)
WHERE id = $1`

func (q *Queries) ReleaseParkingSlot(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, releaseParkingSlot, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const adjustParkingAvailable = `
UPDATE parkings
SET available = LEAST(GREATEST(available::bigint + $2::bigint, 0), capacity)::integer
WHERE id = $1
RETURNING available`

type AdjustParkingAvailableParams struct {
	ID    uuid.UUID
	Delta int64
}

func (q *Queries) AdjustParkingAvailable(ctx context.Context, db DBTX, arg AdjustParkingAvailableParams) (int32, error) {
	var available int32
	err := db.QueryRow(ctx, adjustParkingAvailable, arg.ID, arg.Delta).Scan(&available)
	return available, err
}

const countParkings = `SELECT count(*) FROM parkings`

func (q *Queries) CountParkings(ctx context.Context, db DBTX) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countParkings).Scan(&count)
	return count, err
}
