package queries

import (
	"time"

	"estaciona-api/internal/pkg/money"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      string       `json:"role"`
	Balance   money.Amount `json:"balance"`
	DNI       *string      `json:"dni"`
	Phone     *string      `json:"phone"`
	Plate     *string      `json:"plate"`
	Gender    *string      `json:"gender"`
	CreatedAt time.Time    `json:"created_at"`
}

type ParkingView struct {
	ID           uuid.UUID    `json:"id"`
	OwnerID      *uuid.UUID   `json:"owner_id"`
	Name         string       `json:"name"`
	Address      *string      `json:"address"`
	District     *string      `json:"district"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	PricePerHour money.Amount `json:"price_per_hour"`
	Capacity     int          `json:"capacity"`
	Available    int          `json:"available"`
	Description  *string      `json:"description"`
	Hours        *string      `json:"hours"`
	ImageURL     *string      `json:"image_url"`
	CreatedAt    time.Time    `json:"created_at"`
}

type ReservationView struct {
	ID          uuid.UUID     `json:"id"`
	ParkingID   uuid.UUID     `json:"parking_id"`
	UserID      uuid.UUID     `json:"user_id"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Status      string        `json:"status"`
	TotalAmount *money.Amount `json:"total_amount"`
	CreatedAt   time.Time     `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID    `json:"id"`
	ReservationID uuid.UUID    `json:"reservation_id"`
	Amount        money.Amount `json:"amount"`
	Method        string       `json:"method"`
	Status        string       `json:"status"`
	ProviderRef   *string      `json:"provider_ref"`
	CreatedAt     time.Time    `json:"created_at"`
}

type PromotionView struct {
	ID              uuid.UUID     `json:"id"`
	ParkingID       uuid.UUID     `json:"parking_id"`
	Title           string        `json:"title"`
	Description     *string       `json:"description"`
	DiscountPercent *float64      `json:"discount_percent"`
	FlatAmount      *money.Amount `json:"flat_amount"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	IsActive        bool          `json:"is_active"`
	CreatedAt       time.Time     `json:"created_at"`
}

// EstimateView is a price quote for a slot at one parking.
type EstimateView struct {
	ParkingID     uuid.UUID    `json:"parking_id"`
	DurationHours int64        `json:"duration_hours"`
	EstimatedCost money.Amount `json:"estimated_cost"`
	UnitPrice     money.Amount `json:"unit_price"`
}

type SummaryReport struct {
	TotalUsers        int64        `json:"total_users"`
	TotalParkings     int64        `json:"total_parkings"`
	TotalReservations int64        `json:"total_reservations"`
	TotalIncome       money.Amount `json:"total_income"`
}

type ParkingRevenue struct {
	ParkingID uuid.UUID    `json:"parking_id"`
	Parking   string       `json:"parking"`
	Revenue   money.Amount `json:"revenue"`
}

type DailyReservations struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type DistrictStats struct {
	District      string `json:"district"`
	ParkingsCount int64  `json:"parkings_count"`
}

type BestParking struct {
	ParkingID    uuid.UUID `json:"parking_id"`
	Name         string    `json:"name"`
	Image        *string   `json:"image"`
	Reservations int64     `json:"reservations"`
}
