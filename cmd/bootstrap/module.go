package bootstrap

import (
	"postify/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.ServicesModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
