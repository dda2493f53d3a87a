package components

import (
	"log/slog"

	"postify/internal/domain/distribution"
	"postify/internal/imaging"
	"postify/internal/infra/synthesis"
	"postify/internal/infra/whatsapp"
	"postify/internal/pkg/config"
	"postify/internal/usecase"

	"go.uber.org/fx"
)

// ServicesModule wires the outbound adapters: image synthesis backends, the
// compositor, the delivery gateway and the in-memory job registry.
var ServicesModule = fx.Module("services",
	fx.Provide(
		distribution.NewRegistry,

		func(cfg config.Config, logger *slog.Logger) (*imaging.Compositor, error) {
			return imaging.NewCompositor(cfg.Assets, logger)
		},
		fx.Annotate(
			func(c *imaging.Compositor) *imaging.Compositor { return c },
			fx.As(new(usecase.Compositor)),
		),

		func(cfg config.Config) (*synthesis.GeminiClient, error) {
			return synthesis.NewGeminiClient(cfg.Gemini)
		},
		func(g *synthesis.GeminiClient) usecase.PromptWriter { return g },
		fx.Annotate(
			func(g *synthesis.GeminiClient) usecase.Synthesizer { return g },
			fx.ResultTags(`name:"geminiSynth"`),
		),
		fx.Annotate(
			func(cfg config.Config) usecase.Synthesizer {
				return synthesis.NewBrowserSynthesizer(cfg.Browser)
			},
			fx.ResultTags(`name:"browserSynth"`),
		),

		func(cfg config.Config) usecase.Notifier {
			return whatsapp.NewClient(cfg.WhatsApp)
		},
		func(cfg config.Config) usecase.Pacer {
			return usecase.NewRandomPacer(cfg.Distribution)
		},
	),
)
