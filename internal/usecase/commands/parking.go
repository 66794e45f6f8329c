package commands

import (
	"context"

	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateParkingInput struct {
	OwnerID      *uuid.UUID
	Name         string
	Address      *string
	District     *string
	Lat          float64
	Lng          float64
	PricePerHour money.Amount
	Capacity     int
	// Available defaults to Capacity.
	Available   *int
	Description *string
	Hours       *string
	ImageURL    *string
}

type UpdateParkingInput struct {
	OwnerID      *uuid.UUID
	Name         *string
	Address      *string
	District     *string
	Lat          *float64
	Lng          *float64
	PricePerHour *money.Amount
	Capacity     *int
	Available    *int
	Description  *string
	Hours        *string
	ImageURL     *string
}

type ParkingCommands interface {
	Create(ctx context.Context, in CreateParkingInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateParkingInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AdjustAvailable shifts the free counter by delta, clamped to [0, capacity].
	AdjustAvailable(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

type parkingCommandsImpl struct {
	uow    shared.UnitOfWork
	policy *tz.Policy
	clock  clock.Clock
}

func NewParkingCommands(uow shared.UnitOfWork, policy *tz.Policy, clock clock.Clock) ParkingCommands {
	return &parkingCommandsImpl{
		uow:    uow,
		policy: policy,
		clock:  clock,
	}
}

func (c *parkingCommandsImpl) Create(ctx context.Context, in CreateParkingInput) (uuid.UUID, error) {
	location, err := parking.NewLocation(in.Lat, in.Lng)
	if err != nil {
		return uuid.Nil, err
	}
	available := in.Capacity
	if in.Available != nil {
		available = *in.Available
	}

	p, err := parking.NewParking(
		in.OwnerID,
		in.Name,
		location,
		in.PricePerHour,
		in.Capacity,
		available,
		parking.Details{
			Address:     in.Address,
			District:    in.District,
			Description: in.Description,
			Hours:       in.Hours,
			ImageURL:    in.ImageURL,
		},
		c.policy.Now(c.clock),
	)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Parkings().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (c *parkingCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateParkingInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Parkings().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, queries.ErrParkingNotFound)
		}
		if err := p.Update(in); err != nil {
			return err
		}
		return notFoundAs(tx.Parkings().Update(ctx, tx.DB(), p), queries.ErrParkingNotFound)
	})
}

func (c *parkingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Parkings().Delete(ctx, tx.DB(), id)
	})
	return notFoundAs(err, queries.ErrParkingNotFound)
}

func (c *parkingCommandsImpl) AdjustAvailable(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var available int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		available, err = tx.Parkings().AdjustAvailable(ctx, tx.DB(), id, delta)
		return err
	})
	if err != nil {
		return 0, notFoundAs(err, queries.ErrParkingNotFound)
	}
	return available, nil
}
