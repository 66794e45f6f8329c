package readstore

import (
	"context"

	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/pgconv"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/queries"
)

const reportDateLayout = "2006-01-02"

type ReportReadQueries interface {
	CountUsers(ctx context.Context, db pgstore.DBTX) (int64, error)
	CountParkings(ctx context.Context, db pgstore.DBTX) (int64, error)
	CountReservations(ctx context.Context, db pgstore.DBTX) (int64, error)
	SumPaidPayments(ctx context.Context, db pgstore.DBTX) (int64, error)
	RevenueByParking(ctx context.Context, db pgstore.DBTX) ([]pgstore.RevenueByParkingRow, error)
	ReservationsByDay(ctx context.Context, db pgstore.DBTX, offsetSeconds int32) ([]pgstore.ReservationsByDayRow, error)
	ParkingsByDistrict(ctx context.Context, db pgstore.DBTX) ([]pgstore.ParkingsByDistrictRow, error)
	BestParkings(ctx context.Context, db pgstore.DBTX, limit int32) ([]pgstore.BestParkingsRow, error)
}

type ReportReadStore struct {
	queries ReportReadQueries
	db      pgstore.DBTX
	policy  *tz.Policy
}

func NewReportReadStore(queries ReportReadQueries, db pgstore.DBTX, policy *tz.Policy) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
		policy:  policy,
	}
}

func (r *ReportReadStore) Summary(ctx context.Context) (*queries.SummaryReport, error) {
	users, err := r.queries.CountUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count users", err)
	}
	parkings, err := r.queries.CountParkings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count parkings", err)
	}
	reservations, err := r.queries.CountReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations", err)
	}
	income, err := r.queries.SumPaidPayments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum paid payments", err)
	}
	return &queries.SummaryReport{
		TotalUsers:        users,
		TotalParkings:     parkings,
		TotalReservations: reservations,
		TotalIncome:       money.FromCents(income),
	}, nil
}

func (r *ReportReadStore) RevenueByParking(ctx context.Context) ([]*queries.ParkingRevenue, error) {
	rows, err := r.queries.RevenueByParking(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute revenue by parking", err)
	}
	return mapRows(rows, func(row pgstore.RevenueByParkingRow) *queries.ParkingRevenue {
		return &queries.ParkingRevenue{
			ParkingID: row.ParkingID,
			Parking:   row.Name,
			Revenue:   money.FromCents(row.RevenueCents),
		}
	}), nil
}

func (r *ReportReadStore) ReservationsByDay(ctx context.Context) ([]*queries.DailyReservations, error) {
	rows, err := r.queries.ReservationsByDay(ctx, r.db, int32(r.policy.OffsetSeconds()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by day", err)
	}
	return mapRows(rows, func(row pgstore.ReservationsByDayRow) *queries.DailyReservations {
		return &queries.DailyReservations{
			Date:  row.Day.Time.Format(reportDateLayout),
			Count: row.Reservations,
		}
	}), nil
}

func (r *ReportReadStore) StatsByDistrict(ctx context.Context) ([]*queries.DistrictStats, error) {
	rows, err := r.queries.ParkingsByDistrict(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count parkings by district", err)
	}
	return mapRows(rows, func(row pgstore.ParkingsByDistrictRow) *queries.DistrictStats {
		return &queries.DistrictStats{
			District:      row.District,
			ParkingsCount: row.Parkings,
		}
	}), nil
}

func (r *ReportReadStore) BestParkings(ctx context.Context, limit int) ([]*queries.BestParking, error) {
	rows, err := r.queries.BestParkings(ctx, r.db, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank parkings", err)
	}
	return mapRows(rows, func(row pgstore.BestParkingsRow) *queries.BestParking {
		return &queries.BestParking{
			ParkingID:    row.ParkingID,
			Name:         row.Name,
			Image:        pgconv.StringPtrFromPgtype(row.ImageUrl),
			Reservations: row.Reservations,
		}
	}), nil
}
