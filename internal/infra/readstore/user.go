package readstore

import (
	"context"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/pgconv"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Users, error)
	ListUsers(ctx context.Context, db pgstore.DBTX) ([]pgstore.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgstore.DBTX
	policy  *tz.Policy
}

func NewUserReadStore(queries UserReadQueries, db pgstore.DBTX, policy *tz.Policy) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
		policy:  policy,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr(err, "user not found", "failed to find user by ID")
	}
	return r.toView(row), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return mapRows(rows, r.toView), nil
}

func (r *UserReadStore) toView(row pgstore.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		Balance:   money.FromCents(row.BalanceCents),
		DNI:       pgconv.StringPtrFromPgtype(row.Dni),
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Plate:     pgconv.StringPtrFromPgtype(row.Plate),
		Gender:    pgconv.StringPtrFromPgtype(row.Gender),
		CreatedAt: r.policy.Normalize(pgconv.TimeFromPgtype(row.CreatedAt)),
	}
}
