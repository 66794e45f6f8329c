package components

import (
	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		reservation.NewHourlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	func(clock clock.Clock, calc reservation.PriceCalculator, policy *tz.Policy) *reservation.Services {
		return &reservation.Services{
			Clock:           clock,
			PriceCalculator: calc,
			TimePolicy:      policy,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewParkingCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewPromotionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewParkingQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewPromotionQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
