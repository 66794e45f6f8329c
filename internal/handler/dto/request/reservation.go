package request

import (
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// Timestamps are ISO 8601; a trailing Z or offset is accepted and read as UTC.
type CreateReservationRequest struct {
	ParkingID   uuid.UUID     `json:"parking_id" binding:"required"`
	UserID      *uuid.UUID    `json:"user_id,omitempty"`
	StartTime   string        `json:"start_time" binding:"required" example:"2025-03-01T10:00:00"`
	EndTime     string        `json:"end_time" binding:"required" example:"2025-03-01T12:00:00"`
	Status      string        `json:"status,omitempty" binding:"omitempty,oneof=reserved pending paid cancelled completed"`
	TotalAmount *money.Amount `json:"total_amount,omitempty" swaggertype:"string" example:"10.00"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ParkingID:   r.ParkingID,
		UserID:      r.UserID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
	}
}

type UpdateReservationRequest struct {
	StartTime   *string       `json:"start_time,omitempty"`
	EndTime     *string       `json:"end_time,omitempty"`
	Status      *string       `json:"status,omitempty" binding:"omitempty,oneof=reserved pending paid cancelled completed"`
	TotalAmount *money.Amount `json:"total_amount,omitempty" swaggertype:"string" example:"10.00"`
}

func (r UpdateReservationRequest) ToCommand() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
	}
}

type EstimateQuery struct {
	ParkingID string `form:"parking_id"`
	Start     string `form:"start"`
	End       string `form:"end"`
}

func (q EstimateQuery) ToQuery() queries.EstimateRequest {
	return queries.EstimateRequest{ParkingID: q.ParkingID, Start: q.Start, End: q.End}
}
