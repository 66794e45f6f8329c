package pgstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
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

type Parkings struct {
	ID                uuid.UUID
	OwnerID           pgtype.UUID
	Name              string
	Address           pgtype.Text
	District          pgtype.Text
	Lat               float64
	Lng               float64
	PricePerHourCents int64
	Capacity          int32
	Available         int32
	Hours             pgtype.Text
	ImageUrl          pgtype.Text
	Description       pgtype.Text
	CreatedAt         pgtype.Timestamptz
}

type Reservations struct {
	ID               uuid.UUID
	ParkingID        uuid.UUID
	UserID           uuid.UUID
	StartTime        pgtype.Timestamptz
	EndTime          pgtype.Timestamptz
	Status           string
	TotalAmountCents pgtype.Int8
	CreatedAt        pgtype.Timestamptz
}

type Payments struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AmountCents   int64
	Method        string
	Status        string
	ProviderRef   pgtype.Text
	CreatedAt     pgtype.Timestamptz
}

type Promotions struct {
	ID              uuid.UUID
	ParkingID       uuid.UUID
	Title           string
	Description     pgtype.Text
	DiscountPercent pgtype.Numeric
	FlatAmountCents pgtype.Int8
	StartDate       pgtype.Timestamptz
	EndDate         pgtype.Timestamptz
	IsActive        bool
	CreatedAt       pgtype.Timestamptz
}
