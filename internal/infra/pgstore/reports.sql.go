package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const sumPaidPayments = `SELECT COALESCE(sum(amount_cents), 0)::bigint FROM payments WHERE status = 'paid'`

func (q *Queries) SumPaidPayments(ctx context.Context, db DBTX) (int64, error) {
	var total int64
	err := db.QueryRow(ctx, sumPaidPayments).Scan(&total)
	return total, err
}

const revenueByParking = `
SELECT p.id, p.name, COALESCE(sum(r.total_amount_cents), 0)::bigint AS revenue_cents
FROM parkings p
JOIN reservations r ON r.parking_id = p.id
WHERE r.status = 'paid'
GROUP BY p.id, p.name
ORDER BY revenue_cents DESC, p.name ASC`

type RevenueByParkingRow struct {
	ParkingID    uuid.UUID
	Name         string
	RevenueCents int64
}

func (q *Queries) RevenueByParking(ctx context.Context, db DBTX) ([]RevenueByParkingRow, error) {
	rows, err := db.Query(ctx, revenueByParking)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (RevenueByParkingRow, error) {
		var i RevenueByParkingRow
		err := row.Scan(&i.ParkingID, &i.Name, &i.RevenueCents)
		return i, err
	})
}

// $1 is the local zone offset in seconds; created_at is shifted into that
// zone before truncating to a calendar date.
const reservationsByDay = `
SELECT (created_at AT TIME ZONE 'UTC' + make_interval(secs => $1::int))::date AS day, count(*) AS reservations
FROM reservations
GROUP BY day
ORDER BY day ASC`

type ReservationsByDayRow struct {
	Day          pgtype.Date
	Reservations int64
}

func (q *Queries) ReservationsByDay(ctx context.Context, db DBTX, offsetSeconds int32) ([]ReservationsByDayRow, error) {
	rows, err := db.Query(ctx, reservationsByDay, offsetSeconds)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (ReservationsByDayRow, error) {
		var i ReservationsByDayRow
		err := row.Scan(&i.Day, &i.Reservations)
		return i, err
	})
}

const parkingsByDistrict = `
SELECT district, count(*) AS parkings
FROM parkings
WHERE district IS NOT NULL
GROUP BY district
ORDER BY parkings DESC, district ASC`

type ParkingsByDistrictRow struct {
	District string
	Parkings int64
}

func (q *Queries) ParkingsByDistrict(ctx context.Context, db DBTX) ([]ParkingsByDistrictRow, error) {
	rows, err := db.Query(ctx, parkingsByDistrict)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (ParkingsByDistrictRow, error) {
		var i ParkingsByDistrictRow
		err := row.Scan(&i.District, &i.Parkings)
		return i, err
	})
}

const bestParkings = `
SELECT p.id, p.name, p.image_url, count(r.id) AS reservations
FROM parkings p
JOIN reservations r ON r.parking_id = p.id
GROUP BY p.id, p.name, p.image_url
ORDER BY reservations DESC, p.name ASC
LIMIT $1`

type BestParkingsRow struct {
	ParkingID    uuid.UUID
	Name         string
	ImageUrl     pgtype.Text
	Reservations int64
}

func (q *Queries) BestParkings(ctx context.Context, db DBTX, limit int32) ([]BestParkingsRow, error) {
	rows, err := db.Query(ctx, bestParkings, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (BestParkingsRow, error) {
		var i BestParkingsRow
		err := row.Scan(&i.ParkingID, &i.Name, &i.ImageUrl, &i.Reservations)
		return i, err
	})
}
