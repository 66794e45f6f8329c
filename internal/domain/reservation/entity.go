package reservation

import (
	"errors"
	"time"

	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/patch"
	"estaciona-api/internal/pkg/ptr"
	"estaciona-api/internal/pkg/tz"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot = errors.New("end time must be after start time")
	ErrInvalidStatus   = errors.New("invalid reservation status")
	ErrNegativeAmount  = errors.New("total amount cannot be negative")
	ErrParkingFull     = errors.New("parking is full")
	ErrOverlapping     = errors.New("user already holds a reservation in this time range")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	TimePolicy      *tz.Policy
}

// ParkingSpec is the slice of a parking a reservation needs at creation.
type ParkingSpec struct {
	ID           uuid.UUID
	PricePerHour money.Amount
	Available    int
}

type Reservation struct {
	id          uuid.UUID
	parkingID   uuid.UUID
	userID      uuid.UUID
	timeSlot    TimeSlot
	status      Status
	totalAmount *money.Amount
	createdAt   time.Time
}

// NewReservation validates a new booking. A missing total is filled with the
// quote for the slot; an active status requires free capacity.
func NewReservation(
	services *Services,
	p ParkingSpec,
	userID uuid.UUID,
	slot TimeSlot,
	status Status,
	total *money.Amount,
) (*Reservation, error) {
	if status == "" {
		status = StatusReserved
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if status.IsActive() && p.Available <= 0 {
		return nil, ErrParkingFull
	}
	if total == nil {
		q, err := services.PriceCalculator.Quote(p.PricePerHour, slot)
		if err != nil {
			return nil, err
		}
		total = &q.Total
	}
	if total.IsNegative() {
		return nil, ErrNegativeAmount
	}

	return &Reservation{
		id:          uuid.New(),
		parkingID:   p.ID,
		userID:      userID,
		timeSlot:    slot,
		status:      status,
		totalAmount: total,
		createdAt:   services.TimePolicy.Now(services.Clock),
	}, nil
}

func ReconstructReservation(
	id, parkingID, userID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	totalAmount *money.Amount,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		parkingID:   parkingID,
		userID:      userID,
		timeSlot:    timeSlot,
		status:      status,
		totalAmount: totalAmount,
		createdAt:   createdAt,
	}
}

// Attributes is the editable surface of a reservation.
type Attributes struct {
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	TotalAmount *money.Amount
}

func (r *Reservation) Attributes() Attributes {
	return Attributes{
		StartTime:   r.timeSlot.Start(),
		EndTime:     r.timeSlot.End(),
		Status:      r.status.String(),
		TotalAmount: ptr.Clone(r.totalAmount),
	}
}

// Update merges changes and runs them through the same checks as creation.
// The returned Change tells the caller whether a capacity unit must be taken
// or released and whether the overlap query has to run again.
func (r *Reservation) Update(changes any) (Change, error) {
	attrs := r.Attributes()
	if err := patch.Apply(&attrs, changes); err != nil {
		return Change{}, err
	}

	slot, err := NewTimeSlot(attrs.StartTime, attrs.EndTime)
	if err != nil {
		return Change{}, err
	}
	status := Status(attrs.Status)
	if !status.IsValid() {
		return Change{}, ErrInvalidStatus
	}
	if attrs.TotalAmount != nil && attrs.TotalAmount.IsNegative() {
		return Change{}, ErrNegativeAmount
	}

	change := Change{Slot: slotEffect(r.status, status)}
	if status.IsActive() && (change.Slot == SlotAcquire || !slot.Equal(r.timeSlot)) {
		change.CheckOverlap = true
	}

	r.timeSlot = slot
	r.status = status
	r.totalAmount = attrs.TotalAmount
	return change, nil
}

// MarkPaid is the payment transition. Paying an inactive reservation takes a
// unit again.
func (r *Reservation) MarkPaid() Change {
	change := Change{Slot: slotEffect(r.status, StatusPaid)}
	r.status = StatusPaid
	return change
}

// ReleaseOnDelete reports whether deleting the reservation frees a unit.
func (r *Reservation) ReleaseOnDelete() bool {
	return r.status.IsActive()
}

func (r *Reservation) AmountDue() money.Amount {
	if r.totalAmount == nil {
		return 0
	}
	return *r.totalAmount
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) IsPaid() bool {
	return r.status == StatusPaid
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) ParkingID() uuid.UUID       { return r.parkingID }
func (r *Reservation) UserID() uuid.UUID          { return r.userID }
func (r *Reservation) TimeSlot() TimeSlot         { return r.timeSlot }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) TotalAmount() *money.Amount { return r.totalAmount }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
