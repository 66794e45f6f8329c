package converter

import (
	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/pgconv"
)

func ReservationFromRow(row pgstore.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.ParkingID,
		row.UserID,
		reservation.ReconstructTimeSlot(
			pgconv.TimeFromPgtype(row.StartTime),
			pgconv.TimeFromPgtype(row.EndTime),
		),
		reservation.Status(row.Status),
		pgconv.AmountPtrFromPgtype(row.TotalAmountCents),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ReservationToCreateParams(r *reservation.Reservation) pgstore.CreateReservationParams {
	return pgstore.CreateReservationParams{
		ID:               r.ID(),
		ParkingID:        r.ParkingID(),
		UserID:           r.UserID(),
		StartTime:        pgconv.TimeToPgtype(r.TimeSlot().Start()),
		EndTime:          pgconv.TimeToPgtype(r.TimeSlot().End()),
		Status:           r.Status().String(),
		TotalAmountCents: pgconv.AmountPtrToPgtype(r.TotalAmount()),
		CreatedAt:        pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReservationToUpdateParams(r *reservation.Reservation) pgstore.UpdateReservationParams {
	return pgstore.UpdateReservationParams{
		ID:               r.ID(),
		StartTime:        pgconv.TimeToPgtype(r.TimeSlot().Start()),
		EndTime:          pgconv.TimeToPgtype(r.TimeSlot().End()),
		Status:           r.Status().String(),
		TotalAmountCents: pgconv.AmountPtrToPgtype(r.TotalAmount()),
	}
}
