package commands

import (
	"context"
	"time"

	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidReservationTime = errs.New("start_time and end_time must be ISO 8601 timestamps")

type CreateReservationInput struct {
	ParkingID uuid.UUID
	// UserID defaults to the caller.
	UserID    *uuid.UUID
	StartTime string
	EndTime   string
	Status    string
	// TotalAmount defaults to the estimate for the slot.
	TotalAmount *money.Amount
}

type UpdateReservationInput struct {
	StartTime   *string
	EndTime     *string
	Status      *string
	TotalAmount *money.Amount
}

// reservationChanges is UpdateReservationInput after time parsing; field
// names match reservation.Attributes.
type reservationChanges struct {
	StartTime   *time.Time
	EndTime     *time.Time
	Status      *string
	TotalAmount *money.Amount
}

type ReservationCommands interface {
	Create(ctx context.Context, callerID uuid.UUID, in CreateReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	services  *reservation.Services
	publisher shared.EventPublisher
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	services *reservation.Services,
	publisher shared.EventPublisher,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		services:  services,
		publisher: publisher,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, callerID uuid.UUID, in CreateReservationInput) (uuid.UUID, error) {
	slot, err := c.parseSlot(in.StartTime, in.EndTime)
	if err != nil {
		return uuid.Nil, err
	}
	status, err := reservation.NewStatus(in.Status)
	if err != nil {
		return uuid.Nil, err
	}
	userID := callerID
	if in.UserID != nil && *in.UserID != uuid.Nil {
		userID = *in.UserID
	}

	var created *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ParkingByID(ctx, in.ParkingID)
		if err != nil {
			return notFoundAs(err, queries.ErrParkingNotFound)
		}

		r, err := reservation.NewReservation(c.services, reservation.ParkingSpec{
			ID:           p.ID(),
			PricePerHour: p.PricePerHour(),
			Available:    p.Available(),
		}, userID, slot, status, in.TotalAmount)
		if err != nil {
			return err
		}

		if r.IsActive() {
			if err := c.ensureNoOverlap(ctx, tx, r, nil); err != nil {
				return err
			}
			if err := reserveSlot(ctx, tx, r.ParkingID()); err != nil {
				return err
			}
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, queries.ErrUserNotFound)
			}
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.publisher.Publish(ctx, shared.Event{
		Name:       shared.EventReservationCreated,
		EntityID:   created.ID(),
		OccurredAt: created.CreatedAt(),
		Data: map[string]any{
			"parking_id":   created.ParkingID().String(),
			"user_id":      created.UserID().String(),
			"status":       created.Status().String(),
			"start_time":   created.TimeSlot().Start(),
			"end_time":     created.TimeSlot().End(),
			"total_amount": created.AmountDue().String(),
		},
	})
	return created.ID(), nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput) error {
	changes, err := c.parseChanges(in)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}

		change, err := r.Update(changes)
		if err != nil {
			return err
		}
		if change.CheckOverlap {
			self := r.ID()
			if err := c.ensureNoOverlap(ctx, tx, r, &self); err != nil {
				return err
			}
		}
		if err := applySlotEffect(ctx, tx, r.ParkingID(), change.Slot); err != nil {
			return err
		}

		return notFoundAs(tx.Reservations().Update(ctx, tx.DB(), r), queries.ErrReservationNotFound)
	})
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}
		if r.ReleaseOnDelete() {
			if err := tx.Parkings().ReleaseSlot(ctx, tx.DB(), r.ParkingID()); err != nil {
				return err
			}
		}
		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}
		deleted = r
		return nil
	})
	if err != nil {
		return err
	}

	c.publisher.Publish(ctx, shared.Event{
		Name:       shared.EventReservationDeleted,
		EntityID:   deleted.ID(),
		OccurredAt: c.services.TimePolicy.Now(c.services.Clock),
		Data: map[string]any{
			"parking_id":    deleted.ParkingID().String(),
			"user_id":       deleted.UserID().String(),
			"status":        deleted.Status().String(),
			"released_slot": deleted.ReleaseOnDelete(),
		},
	})
	return nil
}

func (c *reservationCommandsImpl) ensureNoOverlap(ctx context.Context, tx shared.Tx, r *reservation.Reservation, exclude *uuid.UUID) error {
	n, err := tx.Reads().CountOverlapping(ctx, shared.OverlapCriteria{
		UserID:    r.UserID(),
		ParkingID: r.ParkingID(),
		Start:     r.TimeSlot().Start(),
		End:       r.TimeSlot().End(),
		ExcludeID: exclude,
	})
	if err != nil {
		return err
	}
	if n > 0 {
		return reservation.ErrOverlapping
	}
	return nil
}

func (c *reservationCommandsImpl) parseSlot(start, end string) (reservation.TimeSlot, error) {
	s, err := c.parseTime(start)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	e, err := c.parseTime(end)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	return reservation.NewTimeSlot(s, e)
}

func (c *reservationCommandsImpl) parseChanges(in UpdateReservationInput) (reservationChanges, error) {
	changes := reservationChanges{Status: in.Status, TotalAmount: in.TotalAmount}
	if in.StartTime != nil {
		t, err := c.parseTime(*in.StartTime)
		if err != nil {
			return reservationChanges{}, err
		}
		changes.StartTime = &t
	}
	if in.EndTime != nil {
		t, err := c.parseTime(*in.EndTime)
		if err != nil {
			return reservationChanges{}, err
		}
		changes.EndTime = &t
	}
	return changes, nil
}

// parseTime reads a wall clock as UTC and expresses it in the local zone.
func (c *reservationCommandsImpl) parseTime(s string) (time.Time, error) {
	t, err := c.services.TimePolicy.ParseNaive(s)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidReservationTime)
	}
	return c.services.TimePolicy.Normalize(t), nil
}

// reserveSlot takes one unit with the conditional decrement.
func reserveSlot(ctx context.Context, tx shared.Tx, parkingID uuid.UUID) error {
	ok, err := tx.Parkings().ReserveSlot(ctx, tx.DB(), parkingID)
	if err != nil {
		return err
	}
	if !ok {
		return reservation.ErrParkingFull
	}
	return nil
}

func applySlotEffect(ctx context.Context, tx shared.Tx, parkingID uuid.UUID, effect reservation.SlotEffect) error {
	switch effect {
	case reservation.SlotAcquire:
		return reserveSlot(ctx, tx, parkingID)
	case reservation.SlotRelease:
		return tx.Parkings().ReleaseSlot(ctx, tx.DB(), parkingID)
	default:
		return nil
	}
}
