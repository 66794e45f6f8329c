//go:build unit || e2e

package builder

import (
	"time"

	"estaciona-api/internal/domain/promotion"
	reqdto "estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID              uuid.UUID
	ParkingID       uuid.UUID
	Title           string
	DiscountPercent *float64
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
	CreatedAt       time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	percent := 15.0
	return &PromotionBuilder{
		ID:              uuid.New(),
		ParkingID:       uuid.New(),
		Title:           "Weekend discount",
		DiscountPercent: &percent,
		StartDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
		IsActive:        true,
		CreatedAt:       time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) BuildDomain() *promotion.Promotion {
	return promotion.ReconstructPromotion(
		p.ID,
		p.ParkingID,
		p.Title,
		nil,
		promotion.Discount{Percent: p.DiscountPercent},
		p.StartDate,
		p.EndDate,
		p.IsActive,
		p.CreatedAt,
	)
}

func (p *PromotionBuilder) BuildView() *queries.PromotionView {
	return &queries.PromotionView{
		ID:              p.ID,
		ParkingID:       p.ParkingID,
		Title:           p.Title,
		DiscountPercent: p.DiscountPercent,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
	}
}

func (p *PromotionBuilder) BuildCreateRequestDTO() reqdto.CreatePromotionRequest {
	return reqdto.CreatePromotionRequest{
		ParkingID:       p.ParkingID,
		Title:           p.Title,
		DiscountPercent: p.DiscountPercent,
		StartDate:       p.StartDate.Format(naiveLayout),
		EndDate:         p.EndDate.Format(naiveLayout),
	}
}
