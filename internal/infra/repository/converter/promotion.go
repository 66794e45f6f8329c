package converter

import (
	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/pgconv"
)

func PromotionFromRow(row pgstore.Promotions) (*promotion.Promotion, error) {
	percent, err := pgconv.Float64PtrFromNumeric(row.DiscountPercent)
	if err != nil {
		return nil, err
	}
	return promotion.ReconstructPromotion(
		row.ID,
		row.ParkingID,
		row.Title,
		pgconv.StringPtrFromPgtype(row.Description),
		promotion.Discount{
			Percent:    percent,
			FlatAmount: pgconv.AmountPtrFromPgtype(row.FlatAmountCents),
		},
		pgconv.TimeFromPgtype(row.StartDate),
		pgconv.TimeFromPgtype(row.EndDate),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func PromotionToCreateParams(p *promotion.Promotion) pgstore.CreatePromotionParams {
	d := p.Discount()
	return pgstore.CreatePromotionParams{
		ID:              p.ID(),
		ParkingID:       p.ParkingID(),
		Title:           p.Title(),
		Description:     pgconv.StringPtrToPgtype(p.Description()),
		DiscountPercent: pgconv.Float64PtrToPgtype(d.Percent),
		FlatAmountCents: pgconv.AmountPtrToPgtype(d.FlatAmount),
		StartDate:       pgconv.TimeToPgtype(p.StartDate()),
		EndDate:         pgconv.TimeToPgtype(p.EndDate()),
		IsActive:        p.IsActive(),
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PromotionToUpdateParams(p *promotion.Promotion) pgstore.UpdatePromotionParams {
	d := p.Discount()
	return pgstore.UpdatePromotionParams{
		ID:              p.ID(),
		ParkingID:       p.ParkingID(),
		Title:           p.Title(),
		Description:     pgconv.StringPtrToPgtype(p.Description()),
		DiscountPercent: pgconv.Float64PtrToPgtype(d.Percent),
		FlatAmountCents: pgconv.AmountPtrToPgtype(d.FlatAmount),
		StartDate:       pgconv.TimeToPgtype(p.StartDate()),
		EndDate:         pgconv.TimeToPgtype(p.EndDate()),
		IsActive:        p.IsActive(),
	}
}
