package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, name, email, password_hash, role, balance_cents, dni, phone, plate, gender, created_at`

func scanUser(row pgx.Row) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.BalanceCents,
		&i.Dni,
		&i.Phone,
		&i.Plate,
		&i.Gender,
		&i.CreatedAt,
	)
	return i, err
}

const createUser = `
INSERT INTO users (id, name, email, password_hash, role, balance_cents, dni, phone, plate, gender, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	BalanceCents int64
	Dni          pgtype.Text
	Phone        pgtype.Text
	Plate        pgtype.Text
	Gender       pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.BalanceCents,
		arg.Dni,
		arg.Phone,
		arg.Plate,
		arg.Gender,
		arg.CreatedAt,
	)
	return scanUser(row)
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserForUpdate = `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

func (q *Queries) GetUserForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserForUpdate, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const listUsers = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, id DESC`

func (q *Queries) ListUsers(ctx context.Context, db DBTX) ([]Users, error) {
	rows, err := db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

const updateUser = `
UPDATE users
SET name = $2,
    email = $3,
    password_hash = $4,
    role = $5,
    balance_cents = $6,
    dni = $7,
    phone = $8,
    plate = $9,
    gender = $10
WHERE id = $1`

type UpdateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	BalanceCents int64
	Dni          pgtype.Text
	Phone        pgtype.Text
	Plate        pgtype.Text
	Gender       pgtype.Text
}

func (q *Queries) UpdateUser(ctx context.Context, db DBTX, arg UpdateUserParams) (int64, error) {
	result, err := db.Exec(ctx, updateUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.BalanceCents,
		arg.Dni,
		arg.Phone,
		arg.Plate,
		arg.Gender,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteUser = `DELETE FROM users WHERE id = $1`

func (q *Queries) DeleteUser(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteUser, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// The balance guard lives in the WHERE clause so concurrent debits cannot
// overdraw the wallet.
const debitUserBalance = `
UPDATE users
SET balance_cents = balance_cents - $2
WHERE id = $1 AND balance_cents >= $2`

type DebitUserBalanceParams struct {
	ID          uuid.UUID
	AmountCents int64
}

func (q *Queries) DebitUserBalance(ctx context.Context, db DBTX, arg DebitUserBalanceParams) (int64, error) {
	result, err := db.Exec(ctx, debitUserBalance, arg.ID, arg.AmountCents)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countUsers = `SELECT count(*) FROM users`

func (q *Queries) CountUsers(ctx context.Context, db DBTX) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countUsers).Scan(&count)
	return count, err
}
