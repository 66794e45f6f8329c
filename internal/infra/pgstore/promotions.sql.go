package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const promotionColumns = `id, parking_id, title, description, discount_percent, flat_amount_cents, start_date, end_date, is_active, created_at`

func scanPromotion(row pgx.Row) (Promotions, error) {
	var i Promotions
	err := row.Scan(
		&i.ID,
		&i.ParkingID,
		&i.Title,
		&i.Description,
		&i.DiscountPercent,
		&i.FlatAmountCents,
		&i.StartDate,
		&i.EndDate,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const createPromotion = `
INSERT INTO promotions (id, parking_id, title, description, discount_percent, flat_amount_cents, start_date, end_date, is_active, created_at)
VALUES ($1, $2, $3, $4, $5::float8::numeric, $6, $7, $8, $9, $10)
RETURNING ` + promotionColumns

type CreatePromotionParams struct {
	ID              uuid.UUID
	ParkingID       uuid.UUID
	Title           string
	Description     pgtype.Text
	DiscountPercent pgtype.Float8
	FlatAmountCents pgtype.Int8
	StartDate       pgtype.Timestamptz
	EndDate         pgtype.Timestamptz
	IsActive        bool
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreatePromotion(ctx context.Context, db DBTX, arg CreatePromotionParams) (Promotions, error) {
	row := db.QueryRow(ctx, createPromotion,
		arg.ID,
		arg.ParkingID,
		arg.Title,
		arg.Description,
		arg.DiscountPercent,
		arg.FlatAmountCents,
		arg.StartDate,
		arg.EndDate,
		arg.IsActive,
		arg.CreatedAt,
	)
	return scanPromotion(row)
}

const getPromotionByID = `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

func (q *Queries) GetPromotionByID(ctx context.Context, db DBTX, id uuid.UUID) (Promotions, error) {
	return scanPromotion(db.QueryRow(ctx, getPromotionByID, id))
}

const listPromotions = `SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC, id DESC`

func (q *Queries) ListPromotions(ctx context.Context, db DBTX) ([]Promotions, error) {
	rows, err := db.Query(ctx, listPromotions)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPromotion)
}

const listCurrentPromotionsByParking = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE parking_id = $1
  AND is_active
  AND end_date >= $2
ORDER BY created_at DESC, id DESC`

type ListCurrentPromotionsByParkingParams struct {
	ParkingID uuid.UUID
	Now       pgtype.Timestamptz
}

func (q *Queries) ListCurrentPromotionsByParking(ctx context.Context, db DBTX, arg ListCurrentPromotionsByParkingParams) ([]Promotions, error) {
	rows, err := db.Query(ctx, listCurrentPromotionsByParking, arg.ParkingID, arg.Now)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPromotion)
}

const updatePromotion = `
UPDATE promotions
SET parking_id = $2,
    title = $3,
    description = $4,
    discount_percent = $5::float8::numeric,
    flat_amount_cents = $6,
    start_date = $7,
    end_date = $8,
    is_active = $9
WHERE id = $1`

type UpdatePromotionParams struct {
	ID              uuid.UUID
	ParkingID       uuid.UUID
	Title           string
	Description     pgtype.Text
	DiscountPercent pgtype.Float8
	FlatAmountCents pgtype.Int8
	StartDate       pgtype.Timestamptz
	EndDate         pgtype.Timestamptz
	IsActive        bool
}

func (q *Queries) UpdatePromotion(ctx context.Context, db DBTX, arg UpdatePromotionParams) (int64, error) {
	result, err := db.Exec(ctx, updatePromotion,
		arg.ID,
		arg.ParkingID,
		arg.Title,
		arg.Description,
		arg.DiscountPercent,
		arg.FlatAmountCents,
		arg.StartDate,
		arg.EndDate,
		arg.IsActive,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deletePromotion = `DELETE FROM promotions WHERE id = $1`

func (q *Queries) DeletePromotion(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deletePromotion, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
