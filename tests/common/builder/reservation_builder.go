//go:build unit || e2e

package builder

import (
	"time"

	"estaciona-api/internal/domain/reservation"
	reqdto "estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const naiveLayout = "2006-01-02T15:04:05"

type ReservationBuilder struct {
	ID          uuid.UUID
	ParkingID   uuid.UUID
	UserID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	TotalAmount *money.Amount
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	total := money.FromCents(1000)
	return &ReservationBuilder{
		ID:          uuid.New(),
		ParkingID:   uuid.New(),
		UserID:      uuid.New(),
		StartTime:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:      "reserved",
		TotalAmount: &total,
		CreatedAt:   time.Date(2025, 2, 28, 18, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID,
		r.ParkingID,
		r.UserID,
		reservation.ReconstructTimeSlot(r.StartTime, r.EndTime),
		reservation.Status(r.Status),
		r.TotalAmount,
		r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildInfra() pgstore.Reservations {
	var total pgtype.Int8
	if r.TotalAmount != nil {
		total = pgtype.Int8{Int64: r.TotalAmount.Cents(), Valid: true}
	}
	return pgstore.Reservations{
		ID:               r.ID,
		ParkingID:        r.ParkingID,
		UserID:           r.UserID,
		StartTime:        pgtype.Timestamptz{Time: r.StartTime, Valid: true},
		EndTime:          pgtype.Timestamptz{Time: r.EndTime, Valid: true},
		Status:           r.Status,
		TotalAmountCents: total,
		CreatedAt:        pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          r.ID,
		ParkingID:   r.ParkingID,
		UserID:      r.UserID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
		CreatedAt:   r.CreatedAt,
	}
}

// BuildCreateRequestDTO sends naive wall-clock timestamps and leaves
// user_id and total_amount to the server.
func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ParkingID: r.ParkingID,
		StartTime: r.StartTime.Format(naiveLayout),
		EndTime:   r.EndTime.Format(naiveLayout),
	}
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithSlot(start time.Time, d time.Duration) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = start.Add(d)
	return r
}
