package repository

import (
	"context"

	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PromotionWriteQueries interface {
	CreatePromotion(ctx context.Context, db pgstore.DBTX, arg pgstore.CreatePromotionParams) (pgstore.Promotions, error)
	UpdatePromotion(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdatePromotionParams) (int64, error)
	DeletePromotion(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
}

func NewPromotionRepository(queries PromotionWriteQueries) *PromotionRepository {
	return &PromotionRepository{queries: queries}
}

func (r *PromotionRepository) Create(ctx context.Context, tx pgstore.DBTX, p *promotion.Promotion) error {
	if _, err := r.queries.CreatePromotion(ctx, tx, converter.PromotionToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Update(ctx context.Context, tx pgstore.DBTX, p *promotion.Promotion) error {
	rows, err := r.queries.UpdatePromotion(ctx, tx, converter.PromotionToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	return affected(rows, "promotion not found")
}

func (r *PromotionRepository) Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeletePromotion(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete promotion", err)
	}
	return affected(rows, "promotion not found")
}
