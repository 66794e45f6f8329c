package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, reservation_id, amount_cents, method, status, provider_ref, created_at`

func scanPayment(row pgx.Row) (Payments, error) {
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.ReservationID,
		&i.AmountCents,
		&i.Method,
		&i.Status,
		&i.ProviderRef,
		&i.CreatedAt,
	)
	return i, err
}

const createPayment = `
INSERT INTO payments (id, reservation_id, amount_cents, method, status, provider_ref, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AmountCents   int64
	Method        string
	Status        string
	ProviderRef   pgtype.Text
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) (Payments, error) {
	row := db.QueryRow(ctx, createPayment,
		arg.ID,
		arg.ReservationID,
		arg.AmountCents,
		arg.Method,
		arg.Status,
		arg.ProviderRef,
		arg.CreatedAt,
	)
	return scanPayment(row)
}

const getPaymentByID = `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

func (q *Queries) GetPaymentByID(ctx context.Context, db DBTX, id uuid.UUID) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByID, id))
}

const getFirstPaymentByReservation = `
SELECT ` + paymentColumns + `
FROM payments
WHERE reservation_id = $1
ORDER BY created_at ASC, id ASC
LIMIT 1`

func (q *Queries) GetFirstPaymentByReservation(ctx context.Context, db DBTX, reservationID uuid.UUID) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, getFirstPaymentByReservation, reservationID))
}

const listPayments = `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC, id DESC`

func (q *Queries) ListPayments(ctx context.Context, db DBTX) ([]Payments, error) {
	rows, err := db.Query(ctx, listPayments)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPayment)
}

const updatePayment = `
UPDATE payments
SET amount_cents = $2,
    method = $3,
    status = $4,
    provider_ref = $5
WHERE id = $1`

type UpdatePaymentParams struct {
	ID          uuid.UUID
	AmountCents int64
	Method      string
	Status      string
	ProviderRef pgtype.Text
}

func (q *Queries) UpdatePayment(ctx context.Context, db DBTX, arg UpdatePaymentParams) (int64, error) {
	result, err := db.Exec(ctx, updatePayment,
		arg.ID,
		arg.AmountCents,
		arg.Method,
		arg.Status,
		arg.ProviderRef,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deletePayment = `DELETE FROM payments WHERE id = $1`

func (q *Queries) DeletePayment(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deletePayment, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
