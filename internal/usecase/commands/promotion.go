package commands

import (
	"context"
	"time"

	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidPromotionDate = errs.New("start_date and end_date must be ISO 8601 dates")

type CreatePromotionInput struct {
	ParkingID       uuid.UUID
	Title           string
	Description     *string
	DiscountPercent *float64
	FlatAmount      *money.Amount
	StartDate       string
	EndDate         string
	// IsActive defaults to true.
	IsActive *bool
}

type UpdatePromotionInput struct {
	ParkingID       *uuid.UUID
	Title           *string
	Description     *string
	DiscountPercent *float64
	FlatAmount      *money.Amount
	StartDate       *string
	EndDate         *string
	IsActive        *bool
}

type promotionChanges struct {
	ParkingID       *uuid.UUID
	Title           *string
	Description     *string
	DiscountPercent *float64
	FlatAmount      *money.Amount
	StartDate       *time.Time
	EndDate         *time.Time
	IsActive        *bool
}

type PromotionCommands interface {
	Create(ctx context.Context, in CreatePromotionInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdatePromotionInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type promotionCommandsImpl struct {
	uow    shared.UnitOfWork
	policy *tz.Policy
	clock  clock.Clock
}

func NewPromotionCommands(uow shared.UnitOfWork, policy *tz.Policy, clock clock.Clock) PromotionCommands {
	return &promotionCommandsImpl{
		uow:    uow,
		policy: policy,
		clock:  clock,
	}
}

func (c *promotionCommandsImpl) Create(ctx context.Context, in CreatePromotionInput) (uuid.UUID, error) {
	start, err := c.parseDate(in.StartDate)
	if err != nil {
		return uuid.Nil, err
	}
	end, err := c.parseDate(in.EndDate)
	if err != nil {
		return uuid.Nil, err
	}
	discount, err := promotion.NewDiscount(in.DiscountPercent, in.FlatAmount)
	if err != nil {
		return uuid.Nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	p, err := promotion.NewPromotion(in.ParkingID, in.Title, in.Description, discount, start, end, active, c.policy.Now(c.clock))
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Promotions().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, queries.ErrParkingNotFound)
		}
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (c *promotionCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdatePromotionInput) error {
	changes := promotionChanges{
		ParkingID:       in.ParkingID,
		Title:           in.Title,
		Description:     in.Description,
		DiscountPercent: in.DiscountPercent,
		FlatAmount:      in.FlatAmount,
		IsActive:        in.IsActive,
	}
	if in.StartDate != nil {
		t, err := c.parseDate(*in.StartDate)
		if err != nil {
			return err
		}
		changes.StartDate = &t
	}
	if in.EndDate != nil {
		t, err := c.parseDate(*in.EndDate)
		if err != nil {
			return err
		}
		changes.EndDate = &t
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PromotionByID(ctx, id)
		if err != nil {
			return notFoundAs(err, queries.ErrPromotionNotFound)
		}
		if err := p.Update(changes); err != nil {
			return err
		}
		return notFoundAs(tx.Promotions().Update(ctx, tx.DB(), p), queries.ErrPromotionNotFound)
	})
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, queries.ErrParkingNotFound)
	}
	return err
}

func (c *promotionCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Promotions().Delete(ctx, tx.DB(), id)
	})
	return notFoundAs(err, queries.ErrPromotionNotFound)
}

func (c *promotionCommandsImpl) parseDate(s string) (time.Time, error) {
	t, err := c.policy.ParseNaive(s)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidPromotionDate)
	}
	return c.policy.Normalize(t), nil
}
