package bootstrap

import (
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/pkg/tz"

	"go.uber.org/fx"
)

var TimeModule = fx.Module("time",
	fx.Provide(
		clock.NewRealClock,
		NewTimePolicy,
	),
)

func NewTimePolicy(cfg config.Config) *tz.Policy {
	return tz.NewPolicy(cfg.Reservation)
}
