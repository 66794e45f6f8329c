package request

import (
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateParkingRequest struct {
	OwnerID      *uuid.UUID    `json:"owner_id,omitempty"`
	Name         string        `json:"name" binding:"required"`
	Address      *string       `json:"address,omitempty"`
	District     *string       `json:"district,omitempty"`
	Lat          *float64      `json:"lat" binding:"required"`
	Lng          *float64      `json:"lng" binding:"required"`
	PricePerHour *money.Amount `json:"price_per_hour" binding:"required" swaggertype:"string" example:"5.00"`
	Capacity     *int          `json:"capacity" binding:"required"`
	Available    *int          `json:"available,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Hours        *string       `json:"hours,omitempty"`
	ImageURL     *string       `json:"image_url,omitempty"`
}

func (r CreateParkingRequest) ToCommand() commands.CreateParkingInput {
	return commands.CreateParkingInput{
		OwnerID:      r.OwnerID,
		Name:         r.Name,
		Address:      r.Address,
		District:     r.District,
		Lat:          *r.Lat,
		Lng:          *r.Lng,
		PricePerHour: *r.PricePerHour,
		Capacity:     *r.Capacity,
		Available:    r.Available,
		Description:  r.Description,
		Hours:        r.Hours,
		ImageURL:     r.ImageURL,
	}
}

type UpdateParkingRequest struct {
	OwnerID      *uuid.UUID    `json:"owner_id,omitempty"`
	Name         *string       `json:"name,omitempty"`
	Address      *string       `json:"address,omitempty"`
	District     *string       `json:"district,omitempty"`
	Lat          *float64      `json:"lat,omitempty"`
	Lng          *float64      `json:"lng,omitempty"`
	PricePerHour *money.Amount `json:"price_per_hour,omitempty" swaggertype:"string" example:"5.00"`
	Capacity     *int          `json:"capacity,omitempty"`
	Available    *int          `json:"available,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Hours        *string       `json:"hours,omitempty"`
	ImageURL     *string       `json:"image_url,omitempty"`
}

func (r UpdateParkingRequest) ToCommand() commands.UpdateParkingInput {
	return commands.UpdateParkingInput{
		OwnerID:      r.OwnerID,
		Name:         r.Name,
		Address:      r.Address,
		District:     r.District,
		Lat:          r.Lat,
		Lng:          r.Lng,
		PricePerHour: r.PricePerHour,
		Capacity:     r.Capacity,
		Available:    r.Available,
		Description:  r.Description,
		Hours:        r.Hours,
		ImageURL:     r.ImageURL,
	}
}

type AdjustAvailableRequest struct {
	Delta int `json:"delta"`
}

type SearchParkingsQuery struct {
	Q             string `form:"q"`
	AvailableOnly bool   `form:"available_only"`
}
