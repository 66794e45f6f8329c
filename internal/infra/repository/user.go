package repository

import (
	"context"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/repository/converter"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateUserParams) (pgstore.Users, error)
	GetUserForUpdate(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Users, error)
	UpdateUser(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
	DebitUserBalance(ctx context.Context, db pgstore.DBTX, arg pgstore.DebitUserBalanceParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx pgstore.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// FindForUpdate locks the row; the balance written back by Update is then
// the one a concurrent debit left behind.
func (r *UserRepository) FindForUpdate(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) Update(ctx context.Context, tx pgstore.DBTX, u *user.User) error {
	rows, err := r.queries.UpdateUser(ctx, tx, converter.UserToUpdateParams(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	return affected(rows, "user not found")
}

func (r *UserRepository) Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteUser(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return affected(rows, "user not found")
}

// DebitBalance subtracts amount only while the balance still covers it.
func (r *UserRepository) DebitBalance(ctx context.Context, tx pgstore.DBTX, id uuid.UUID, amount money.Amount) (bool, error) {
	rows, err := r.queries.DebitUserBalance(ctx, tx, pgstore.DebitUserBalanceParams{
		ID:          id,
		AmountCents: amount.Cents(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to debit user balance", err)
	}
	return rows == 1, nil
}
