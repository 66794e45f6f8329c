package bootstrap

import (
	"estaciona-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	TimeModule,
	IntegrationsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
