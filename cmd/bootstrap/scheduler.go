package bootstrap

import (
	"context"
	"log/slog"

	"postify/internal/pkg/config"
	"postify/internal/scheduler"
	"postify/internal/usecase"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		func(cfg config.Config, d usecase.DistributionUseCase, logger *slog.Logger) (*scheduler.Service, error) {
			return scheduler.NewService(cfg.Scheduler, d, logger)
		},
	),
	fx.Invoke(registerScheduler),
)

func registerScheduler(lc fx.Lifecycle, svc *scheduler.Service) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			svc.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			svc.Stop()
			return nil
		},
	})
}
