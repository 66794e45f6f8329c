package commands

import (
	"context"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/password"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmailTaken = errs.New("email already registered")

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	DNI      *string
	Phone    *string
	Plate    *string
	Gender   *string
}

// UpdateUserInput fields left nil keep their stored value.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	Balance  *money.Amount
	DNI      *string
	Phone    *string
	Plate    *string
	Gender   *string
	Password *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	policy *tz.Policy
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, policy *tz.Policy, clock clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:    uow,
		policy: policy,
		clock:  clock,
	}
}

func (c *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (uuid.UUID, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	if in.Role == "" {
		in.Role = user.RoleClient.String()
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, err
	}
	if in.Password == "" {
		return uuid.Nil, user.ErrEmptyPassword
	}
	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	profile := user.Profile{DNI: in.DNI, Phone: in.Phone, Plate: in.Plate, Gender: in.Gender}
	u := user.NewUser(name, email, hash, role, profile, c.policy.Now(c.clock))

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureEmailFree(ctx, tx.Reads(), email.Value(), uuid.Nil); err != nil {
			return err
		}
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (c *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, queries.ErrUserNotFound)
		}

		if in.Email != nil {
			if err := ensureEmailFree(ctx, tx.Reads(), *in.Email, id); err != nil {
				return err
			}
		}
		if err := u.Update(in); err != nil {
			return err
		}
		if in.Password != nil {
			hash, err := password.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			u.ChangePasswordHash(hash)
		}

		return tx.Users().Update(ctx, tx.DB(), u)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrEmailTaken
	}
	return err
}

func (c *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), id)
	})
	return notFoundAs(err, queries.ErrUserNotFound)
}

// ensureEmailFree fails when email belongs to a user other than self.
func ensureEmailFree(ctx context.Context, reads shared.CommandReads, email string, self uuid.UUID) error {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return err
	}
	existing, err := reads.UserByEmail(ctx, normalized.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID() != self {
		return ErrEmailTaken
	}
	return nil
}

// notFoundAs replaces a repository not-found error with the use case sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
