package commands

import (
	"context"
	"time"

	"estaciona-api/internal/domain/payment"
	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPaymentAmountRequired = errs.New("amount is required")

type CreatePaymentInput struct {
	ReservationID uuid.UUID
	Amount        *money.Amount
	Method        string
	Status        string
	ProviderRef   *string
}

type UpdatePaymentInput struct {
	Amount      *money.Amount
	Method      *string
	Status      *string
	ProviderRef *string
}

type PayReservationInput struct {
	Method      string
	ProviderRef *string
}

type PayReservationResult struct {
	PaymentID uuid.UUID
	// Replayed is set when the reservation was already paid and the first
	// recorded payment is returned instead of a new one.
	Replayed bool
}

type PaymentCommands interface {
	Create(ctx context.Context, in CreatePaymentInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdatePaymentInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	PayReservation(ctx context.Context, reservationID uuid.UUID, in PayReservationInput) (*PayReservationResult, error)
}

type paymentCommandsImpl struct {
	uow       shared.UnitOfWork
	services  *reservation.Services
	publisher shared.EventPublisher
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	services *reservation.Services,
	publisher shared.EventPublisher,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:       uow,
		services:  services,
		publisher: publisher,
	}
}

func (c *paymentCommandsImpl) Create(ctx context.Context, in CreatePaymentInput) (uuid.UUID, error) {
	if in.Amount == nil {
		return uuid.Nil, ErrPaymentAmountRequired
	}
	status, err := payment.NewStatus(in.Status)
	if err != nil {
		return uuid.Nil, err
	}
	p, err := payment.NewPayment(in.ReservationID, *in.Amount, payment.Method(in.Method), status, in.ProviderRef, c.now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if p.SettlesReservation() {
			if err := settleReservation(ctx, tx, p.ReservationID()); err != nil {
				return err
			}
		}
		if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, queries.ErrReservationNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if p.SettlesReservation() {
		c.publishCompleted(ctx, p)
	}
	return p.ID(), nil
}

func (c *paymentCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdatePaymentInput) error {
	var updated *payment.Payment
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PaymentByID(ctx, id)
		if err != nil {
			return notFoundAs(err, queries.ErrPaymentNotFound)
		}
		if err := p.Update(in); err != nil {
			return err
		}
		if p.SettlesReservation() {
			if err := settleReservation(ctx, tx, p.ReservationID()); err != nil {
				return err
			}
		}
		if err := tx.Payments().Update(ctx, tx.DB(), p); err != nil {
			return notFoundAs(err, queries.ErrPaymentNotFound)
		}
		updated = p
		return nil
	})
	if err != nil {
		return err
	}

	if in.Status != nil && updated.SettlesReservation() {
		c.publishCompleted(ctx, updated)
	}
	return nil
}

func (c *paymentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Delete(ctx, tx.DB(), id)
	})
	return notFoundAs(err, queries.ErrPaymentNotFound)
}

// PayReservation settles a reservation for its total amount. The wallet
// method debits the reservation owner's balance in the same transaction.
func (c *paymentCommandsImpl) PayReservation(ctx context.Context, reservationID uuid.UUID, in PayReservationInput) (*PayReservationResult, error) {
	var (
		result  *PayReservationResult
		settled *payment.Payment
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}

		if r.IsPaid() {
			existing, err := tx.Reads().FirstPaymentForReservation(ctx, reservationID)
			if err == nil {
				result = &PayReservationResult{PaymentID: existing.ID(), Replayed: true}
				return nil
			}
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}

		amount := r.AmountDue()
		method := payment.Method(in.Method)
		if method.IsWallet() {
			ok, err := tx.Users().DebitBalance(ctx, tx.DB(), r.UserID(), amount)
			if err != nil {
				return err
			}
			if !ok {
				return user.ErrInsufficientBalance
			}
		}

		p, err := payment.NewSettlement(r.ID(), amount, method, in.ProviderRef, c.now())
		if err != nil {
			return err
		}

		change := r.MarkPaid()
		if err := applySlotEffect(ctx, tx, r.ParkingID(), change.Slot); err != nil {
			return err
		}
		if err := tx.Reservations().SetStatus(ctx, tx.DB(), r.ID(), r.Status()); err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}
		if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			return err
		}

		settled = p
		result = &PayReservationResult{PaymentID: p.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled != nil {
		c.publishCompleted(ctx, settled)
	}
	return result, nil
}

func (c *paymentCommandsImpl) publishCompleted(ctx context.Context, p *payment.Payment) {
	c.publisher.Publish(ctx, shared.Event{
		Name:       shared.EventPaymentCompleted,
		EntityID:   p.ID(),
		OccurredAt: c.now(),
		Data: map[string]any{
			"reservation_id": p.ReservationID().String(),
			"amount":         p.Amount().String(),
			"method":         p.Method().String(),
		},
	})
}

func (c *paymentCommandsImpl) now() time.Time {
	return c.services.TimePolicy.Now(c.services.Clock)
}

// settleReservation marks the reservation paid, taking a unit back when it
// was cancelled or completed.
func settleReservation(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) error {
	r, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
	if err != nil {
		return notFoundAs(err, queries.ErrReservationNotFound)
	}
	if r.IsPaid() {
		return nil
	}
	change := r.MarkPaid()
	if err := applySlotEffect(ctx, tx, r.ParkingID(), change.Slot); err != nil {
		return err
	}
	return tx.Reservations().SetStatus(ctx, tx.DB(), r.ID(), r.Status())
}
