//go:build unit || e2e

package builder

import (
	"time"

	"estaciona-api/internal/domain/user"
	reqdto "estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	Role         string
	Balance      money.Amount
	Plate        *string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	plate := "ABC-123"
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Ana Torres",
		Email:        "ana@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "client",
		Balance:      money.FromCents(5000),
		Plate:        &plate,
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	return user.ReconstructUser(
		u.ID,
		user.Name(u.Name),
		user.ReconstructEmail(u.Email),
		u.PasswordHash,
		user.Role(u.Role),
		u.Balance,
		user.Profile{Plate: u.Plate},
		u.CreatedAt,
	)
}

func (u *UserBuilder) BuildInfra() pgstore.Users {
	var plate pgtype.Text
	if u.Plate != nil {
		plate = pgtype.Text{String: *u.Plate, Valid: true}
	}
	return pgstore.Users{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		BalanceCents: u.Balance.Cents(),
		Plate:        plate,
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Balance:   u.Balance,
		Plate:     u.Plate,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
		Plate:    u.Plate,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithBalance(cents int64) *UserBuilder {
	u.Balance = money.FromCents(cents)
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
