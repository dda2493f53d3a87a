package components

import (
	"log/slog"

	"postify/internal/pkg/clock"
	"postify/internal/pkg/config"
	"postify/internal/pkg/jwt"
	"postify/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		func(cfg config.Config, jwtService *jwt.Service) usecase.AuthUseCase {
			return usecase.NewAuthUseCase(cfg.Admin, jwtService)
		},
		usecase.NewUserUseCase,
		usecase.NewSubscriberUseCase,
		usecase.NewHolidayUseCase,

		fx.Annotate(
			usecase.NewDistributionUseCase,
			fx.ParamTags("", "", "", "", `name:"browserSynth"`, `name:"geminiSynth"`),
		),
		fx.Annotate(
			func(
				holidays usecase.HolidayRepository,
				prompts usecase.PromptWriter,
				synth usecase.Synthesizer,
				compositor usecase.Compositor,
				notifier usecase.Notifier,
				cfg config.Config,
				clk clock.Clock,
				logger *slog.Logger,
			) usecase.PostUseCase {
				return usecase.NewPostUseCase(holidays, prompts, synth, compositor, notifier, cfg.WhatsApp, clk, logger)
			},
			fx.ParamTags("", "", `name:"geminiSynth"`),
		),
	),
)
