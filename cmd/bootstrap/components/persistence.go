package components

import (
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/readstore"
	"estaciona-api/internal/infra/uow"
	"estaciona-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction by the unit of work, so only the
// read side and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Parking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ParkingReadQueries)),
		),
		fx.Annotate(
			readstore.NewParkingReadStore,
			fx.As(new(queries.ParkingReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Promotion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PromotionReadQueries)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
		// Report
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReportReadQueries)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgstore.Queries {
	return pgstore.New()
}

func NewDBTX(pool *pgxpool.Pool) pgstore.DBTX {
	return pool
}
