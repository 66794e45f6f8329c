package request

import (
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePromotionRequest struct {
	ParkingID       uuid.UUID     `json:"parking_id" binding:"required"`
	Title           string        `json:"title" binding:"required"`
	Description     *string       `json:"description,omitempty"`
	DiscountPercent *float64      `json:"discount_percent,omitempty" binding:"omitempty,min=0,max=100"`
	FlatAmount      *money.Amount `json:"flat_amount,omitempty" swaggertype:"string" example:"2.00"`
	StartDate       string        `json:"start_date" binding:"required" example:"2025-03-01T00:00:00"`
	EndDate         string        `json:"end_date" binding:"required" example:"2025-03-31T23:59:59"`
	IsActive        *bool         `json:"is_active,omitempty"`
}

func (r CreatePromotionRequest) ToCommand() commands.CreatePromotionInput {
	return commands.CreatePromotionInput{
		ParkingID:       r.ParkingID,
		Title:           r.Title,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		FlatAmount:      r.FlatAmount,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IsActive:        r.IsActive,
	}
}

type UpdatePromotionRequest struct {
	ParkingID       *uuid.UUID    `json:"parking_id,omitempty"`
	Title           *string       `json:"title,omitempty"`
	Description     *string       `json:"description,omitempty"`
	DiscountPercent *float64      `json:"discount_percent,omitempty" binding:"omitempty,min=0,max=100"`
	FlatAmount      *money.Amount `json:"flat_amount,omitempty" swaggertype:"string" example:"2.00"`
	StartDate       *string       `json:"start_date,omitempty"`
	EndDate         *string       `json:"end_date,omitempty"`
	IsActive        *bool         `json:"is_active,omitempty"`
}

func (r UpdatePromotionRequest) ToCommand() commands.UpdatePromotionInput {
	return commands.UpdatePromotionInput{
		ParkingID:       r.ParkingID,
		Title:           r.Title,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		FlatAmount:      r.FlatAmount,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IsActive:        r.IsActive,
	}
}
