package components

import (
	"estaciona-api/internal/handler"
	"estaciona-api/internal/handler/api"
	"estaciona-api/internal/handler/middleware"
	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthSettings,
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewParkingHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewPromotionHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthSettings(cfg config.Config, jwtService *jwt.Service) api.AuthSettings {
	return api.AuthSettings{
		Cookie:   cfg.Cookie,
		OAuth:    cfg.OAuth,
		TokenTTL: jwtService.TokenDuration(),
	}
}

type handlersIn struct {
	fx.In

	Auth        *api.AuthHandler
	User        *api.UserHandler
	Parking     *api.ParkingHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Promotion   *api.PromotionHandler
	Report      *api.ReportHandler
}

func NewHandlers(in handlersIn) handler.Handlers {
	return handler.Handlers{
		Auth:        in.Auth,
		User:        in.User,
		Parking:     in.Parking,
		Reservation: in.Reservation,
		Payment:     in.Payment,
		Promotion:   in.Promotion,
		Report:      in.Report,
	}
}
