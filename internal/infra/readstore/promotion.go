package readstore

import (
	"context"
	"time"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/pgconv"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionReadQueries interface {
	GetPromotionByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Promotions, error)
	ListPromotions(ctx context.Context, db pgstore.DBTX) ([]pgstore.Promotions, error)
	ListCurrentPromotionsByParking(ctx context.Context, db pgstore.DBTX, arg pgstore.ListCurrentPromotionsByParkingParams) ([]pgstore.Promotions, error)
}

type PromotionReadStore struct {
	queries PromotionReadQueries
	db      pgstore.DBTX
	policy  *tz.Policy
}

func NewPromotionReadStore(queries PromotionReadQueries, db pgstore.DBTX, policy *tz.Policy) *PromotionReadStore {
	return &PromotionReadStore{
		queries: queries,
		db:      db,
		policy:  policy,
	}
}

func (r *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PromotionView, error) {
	row, err := r.queries.GetPromotionByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr(err, "promotion not found", "failed to find promotion by ID")
	}
	return r.toView(row)
}

func (r *PromotionReadStore) List(ctx context.Context) ([]*queries.PromotionView, error) {
	rows, err := r.queries.ListPromotions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	return r.toViews(rows)
}

func (r *PromotionReadStore) ListCurrentByParking(ctx context.Context, parkingID uuid.UUID, now time.Time) ([]*queries.PromotionView, error) {
	rows, err := r.queries.ListCurrentPromotionsByParking(ctx, r.db, pgstore.ListCurrentPromotionsByParkingParams{
		ParkingID: parkingID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions by parking", err)
	}
	return r.toViews(rows)
}

func (r *PromotionReadStore) toViews(rows []pgstore.Promotions) ([]*queries.PromotionView, error) {
	out := make([]*queries.PromotionView, 0, len(rows))
	for _, row := range rows {
		v, err := r.toView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *PromotionReadStore) toView(row pgstore.Promotions) (*queries.PromotionView, error) {
	percent, err := pgconv.Float64PtrFromNumeric(row.DiscountPercent)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount percent", err)
	}
	return &queries.PromotionView{
		ID:              row.ID,
		ParkingID:       row.ParkingID,
		Title:           row.Title,
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		DiscountPercent: percent,
		FlatAmount:      pgconv.AmountPtrFromPgtype(row.FlatAmountCents),
		StartDate:       r.policy.Normalize(pgconv.TimeFromPgtype(row.StartDate)),
		EndDate:         r.policy.Normalize(pgconv.TimeFromPgtype(row.EndDate)),
		IsActive:        row.IsActive,
		CreatedAt:       r.policy.Normalize(pgconv.TimeFromPgtype(row.CreatedAt)),
	}, nil
}
