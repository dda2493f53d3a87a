package bootstrap

import (
	"postify/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads the process environment once and hands the parsed
// config to every other module.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
