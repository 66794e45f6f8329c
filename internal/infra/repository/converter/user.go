package converter

import (
	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/pgconv"
)

func UserFromRow(row pgstore.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		user.Name(row.Name),
		user.ReconstructEmail(row.Email),
		row.PasswordHash,
		user.Role(row.Role),
		money.FromCents(row.BalanceCents),
		user.Profile{
			DNI:    pgconv.StringPtrFromPgtype(row.Dni),
			Phone:  pgconv.StringPtrFromPgtype(row.Phone),
			Plate:  pgconv.StringPtrFromPgtype(row.Plate),
			Gender: pgconv.StringPtrFromPgtype(row.Gender),
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func UserToCreateParams(u *user.User) pgstore.CreateUserParams {
	p := u.Profile()
	return pgstore.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().String(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		BalanceCents: u.Balance().Cents(),
		Dni:          pgconv.StringPtrToPgtype(p.DNI),
		Phone:        pgconv.StringPtrToPgtype(p.Phone),
		Plate:        pgconv.StringPtrToPgtype(p.Plate),
		Gender:       pgconv.StringPtrToPgtype(p.Gender),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserToUpdateParams(u *user.User) pgstore.UpdateUserParams {
	p := u.Profile()
	return pgstore.UpdateUserParams{
		ID:           u.ID(),
		Name:         u.Name().String(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		BalanceCents: u.Balance().Cents(),
		Dni:          pgconv.StringPtrToPgtype(p.DNI),
		Phone:        pgconv.StringPtrToPgtype(p.Phone),
		Plate:        pgconv.StringPtrToPgtype(p.Plate),
		Gender:       pgconv.StringPtrToPgtype(p.Gender),
	}
}
