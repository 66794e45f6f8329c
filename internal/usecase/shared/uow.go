package shared

import (
	"context"
	"time"

	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/domain/payment"
	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgstore.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgstore.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Parkings() ParkingRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Promotions() PromotionRepository
	Reads() CommandReads
	DB() pgstore.DBTX
}

// CommandReads loads aggregates for the write side. Inside a transaction they
// run on the transaction connection.
type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	ParkingByID(ctx context.Context, id uuid.UUID) (*parking.Parking, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	PromotionByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error)
	FirstPaymentForReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error)
	CountOverlapping(ctx context.Context, criteria OverlapCriteria) (int64, error)
}

// OverlapCriteria selects active reservations of one user at one parking
// whose slot intersects [Start, End).
type OverlapCriteria struct {
	UserID    uuid.UUID
	ParkingID uuid.UUID
	Start     time.Time
	End       time.Time
	ExcludeID *uuid.UUID
}

type UserRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, u *user.User) error
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, tx pgstore.DBTX, u *user.User) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
	// DebitBalance reports false when the balance does not cover amount.
	DebitBalance(ctx context.Context, tx pgstore.DBTX, id uuid.UUID, amount money.Amount) (bool, error)
}

type ParkingRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, p *parking.Parking) error
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (*parking.Parking, error)
	Update(ctx context.Context, tx pgstore.DBTX, p *parking.Parking) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
	// ReserveSlot takes one unit; false means no unit was free.
	ReserveSlot(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (bool, error)
	ReleaseSlot(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
	AdjustAvailable(ctx context.Context, tx pgstore.DBTX, id uuid.UUID, delta int) (int, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, r *reservation.Reservation) error
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, tx pgstore.DBTX, r *reservation.Reservation) error
	SetStatus(ctx context.Context, tx pgstore.DBTX, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, p *payment.Payment) error
	Update(ctx context.Context, tx pgstore.DBTX, p *payment.Payment) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
}

type PromotionRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, p *promotion.Promotion) error
	Update(ctx context.Context, tx pgstore.DBTX, p *promotion.Promotion) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
}
