package queries

import (
	"context"
)

const bestParkingsLimit = 5

type ReportQueries interface {
	Summary(ctx context.Context) (*SummaryReport, error)
	RevenueByParking(ctx context.Context) ([]*ParkingRevenue, error)
	ReservationsByDay(ctx context.Context) ([]*DailyReservations, error)
	StatsByDistrict(ctx context.Context) ([]*DistrictStats, error)
	BestParkings(ctx context.Context) ([]*BestParking, error)
}

type ReportReadStore interface {
	Summary(ctx context.Context) (*SummaryReport, error)
	RevenueByParking(ctx context.Context) ([]*ParkingRevenue, error)
	// ReservationsByDay groups by the calendar date of created_at in the local zone.
	ReservationsByDay(ctx context.Context) ([]*DailyReservations, error)
	StatsByDistrict(ctx context.Context) ([]*DistrictStats, error)
	BestParkings(ctx context.Context, limit int) ([]*BestParking, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{readStore: readStore}
}

func (q *reportQueriesImpl) Summary(ctx context.Context) (*SummaryReport, error) {
	return q.readStore.Summary(ctx)
}

func (q *reportQueriesImpl) RevenueByParking(ctx context.Context) ([]*ParkingRevenue, error) {
	return q.readStore.RevenueByParking(ctx)
}

func (q *reportQueriesImpl) ReservationsByDay(ctx context.Context) ([]*DailyReservations, error) {
	return q.readStore.ReservationsByDay(ctx)
}

func (q *reportQueriesImpl) StatsByDistrict(ctx context.Context) ([]*DistrictStats, error) {
	return q.readStore.StatsByDistrict(ctx)
}

func (q *reportQueriesImpl) BestParkings(ctx context.Context) ([]*BestParking, error) {
	return q.readStore.BestParkings(ctx, bestParkingsLimit)
}
