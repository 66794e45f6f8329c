package uow

import (
	"context"

	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/domain/payment"
	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/repository/converter"
	"estaciona-api/internal/pkg/pgconv"
	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads loads write-side aggregates on whichever connection it was
// built with: the pool outside a transaction, the pgx.Tx inside one.
type commandReads struct {
	q    *pgstore.Queries
	dbtx pgstore.DBTX
}

func newCommandReads(q *pgstore.Queries, dbtx pgstore.DBTX) *commandReads {
	return &commandReads{q: q, dbtx: dbtx}
}

func findErr(err error, what string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+what, err)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.q.GetUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, findErr(err, "user")
	}
	return converter.UserFromRow(row), nil
}

func (r *commandReads) ParkingByID(ctx context.Context, id uuid.UUID) (*parking.Parking, error) {
	row, err := r.q.GetParkingByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, findErr(err, "parking")
	}
	return converter.ParkingFromRow(row), nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.q.GetReservationByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, findErr(err, "reservation")
	}
	return converter.ReservationFromRow(row), nil
}

func (r *commandReads) PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.q.GetPaymentByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, findErr(err, "payment")
	}
	return converter.PaymentFromRow(row), nil
}

func (r *commandReads) PromotionByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	row, err := r.q.GetPromotionByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, findErr(err, "promotion")
	}
	p, err := converter.PromotionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid promotion row", err)
	}
	return p, nil
}

func (r *commandReads) FirstPaymentForReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error) {
	row, err := r.q.GetFirstPaymentByReservation(ctx, r.dbtx, reservationID)
	if err != nil {
		return nil, findErr(err, "payment")
	}
	return converter.PaymentFromRow(row), nil
}

func (r *commandReads) CountOverlapping(ctx context.Context, c shared.OverlapCriteria) (int64, error) {
	n, err := r.q.CountOverlappingReservations(ctx, r.dbtx, pgstore.CountOverlappingReservationsParams{
		UserID:    c.UserID,
		ParkingID: c.ParkingID,
		Statuses:  reservation.ActiveStatusStrings(),
		StartTime: pgconv.TimeToPgtype(c.Start),
		EndTime:   pgconv.TimeToPgtype(c.End),
		ExcludeID: pgconv.UUIDPtrToPgtype(c.ExcludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return n, nil
}
