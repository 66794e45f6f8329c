package queries

import (
	"context"

	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/tz"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrMissingEstimateArgs = errs.New("parking_id, start and end are required")
	ErrInvalidEstimateTime = errs.New("invalid date format")
)

// EstimateRequest carries the raw query string values.
type EstimateRequest struct {
	ParkingID string
	Start     string
	End       string
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
	Estimate(ctx context.Context, req EstimateRequest) (*EstimateView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore  ReservationReadStore
	parkings   ParkingReadStore
	calculator reservation.PriceCalculator
	policy     *tz.Policy
}

func NewReservationQueries(
	readStore ReservationReadStore,
	parkings ParkingReadStore,
	calculator reservation.PriceCalculator,
	policy *tz.Policy,
) ReservationQueries {
	return &reservationQueriesImpl{
		readStore:  readStore,
		parkings:   parkings,
		calculator: calculator,
		policy:     policy,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return r, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	return q.readStore.List(ctx)
}

// Estimate quotes whole started hours, minimum one, at the parking's hourly price.
func (q *reservationQueriesImpl) Estimate(ctx context.Context, req EstimateRequest) (*EstimateView, error) {
	if req.ParkingID == "" || req.Start == "" || req.End == "" {
		return nil, ErrMissingEstimateArgs
	}
	parkingID, err := uuid.Parse(req.ParkingID)
	if err != nil {
		return nil, ErrMissingEstimateArgs
	}
	start, err := q.policy.ParseNaive(req.Start)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEstimateTime)
	}
	end, err := q.policy.ParseNaive(req.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEstimateTime)
	}
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	p, err := q.parkings.FindByID(ctx, parkingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrParkingNotFound
		}
		return nil, err
	}

	quote, err := q.calculator.Quote(p.PricePerHour, slot)
	if err != nil {
		return nil, err
	}
	return &EstimateView{
		ParkingID:     p.ID,
		DurationHours: quote.Hours,
		EstimatedCost: quote.Total,
		UnitPrice:     quote.UnitPrice,
	}, nil
}
