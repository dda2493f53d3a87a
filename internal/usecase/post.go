package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"postify/internal/domain/holiday"
	"postify/internal/domain/recipient"
	"postify/internal/imaging"
	"postify/internal/infra"
	"postify/internal/pkg/clock"
	"postify/internal/pkg/config"
	"postify/internal/pkg/errs"
)

// GeneratePostInput carries optional overrides for a one-off post. Empty
// fields fall back to the configured defaults; a nil Holiday means today's
// calendar entry.
type GeneratePostInput struct {
	Holiday *string
	Phone   string
	Mail    string
	Website string
}

type GeneratePostResult struct {
	Success bool
	Holiday string
	Caption string
	Message string
}

type PostUseCase interface {
	Generate(ctx context.Context, input GeneratePostInput) (GeneratePostResult, error)
}

type postUseCaseImpl struct {
	holidays   HolidayRepository
	prompts    PromptWriter
	synth      Synthesizer
	compositor Compositor
	notifier   Notifier
	defaults   config.WhatsAppConfig
	clock      clock.Clock
	logger     *slog.Logger
}

func NewPostUseCase(
	holidays HolidayRepository,
	prompts PromptWriter,
	synth Synthesizer,
	compositor Compositor,
	notifier Notifier,
	defaults config.WhatsAppConfig,
	clock clock.Clock,
	logger *slog.Logger,
) PostUseCase {
	return &postUseCaseImpl{
		holidays:   holidays,
		prompts:    prompts,
		synth:      synth,
		compositor: compositor,
		notifier:   notifier,
		defaults:   defaults,
		clock:      clock,
		logger:     logger,
	}
}

// Generate builds and sends a single post synchronously. A delivery failure
// is reported in the result rather than as an error so the caller still sees
// the generated caption.
func (p *postUseCaseImpl) Generate(ctx context.Context, input GeneratePostInput) (GeneratePostResult, error) {
	phone := input.Phone
	if phone == "" {
		phone = p.defaults.DefaultPhone
	}
	mail := input.Mail
	if mail == "" {
		mail = p.defaults.DefaultMail
	}
	website := input.Website
	if website == "" {
		website = p.defaults.DefaultWebsite
	}

	occasion, description, err := p.resolveHoliday(ctx, input.Holiday)
	if err != nil {
		return GeneratePostResult{}, err
	}

	pc, err := p.prompts.ComposePost(ctx, occasion, description)
	if err != nil {
		return GeneratePostResult{}, errs.Wrap(err, "failed to compose post")
	}

	base, err := p.synth.Synthesize(ctx, pc.Prompt)
	if err != nil {
		return GeneratePostResult{}, errs.Wrap(err, "image generation failed")
	}

	img, err := p.compositor.Compose(base, recipient.LogoAndFooter{
		Phone:   "+91 " + phone,
		Mail:    mail,
		Website: website,
	})
	if err != nil {
		return GeneratePostResult{}, errs.Wrap(err, "failed to compose image")
	}

	encoded, err := imaging.EncodeBase64(img)
	if err != nil {
		return GeneratePostResult{}, err
	}

	if _, err := p.notifier.SendMedia(ctx, phone, encoded, pc.Caption); err != nil {
		p.logger.Warn("post delivery failed", slog.String("phone", phone), slog.Any("error", err))
		return GeneratePostResult{
			Success: false,
			Holiday: occasion,
			Caption: pc.Caption,
			Message: fmt.Sprintf("Post generated but failed to send: %v", err),
		}, nil
	}

	return GeneratePostResult{
		Success: true,
		Holiday: occasion,
		Caption: pc.Caption,
		Message: fmt.Sprintf("Post generated and sent to %s successfully!", phone),
	}, nil
}

func (p *postUseCaseImpl) resolveHoliday(ctx context.Context, override *string) (string, *string, error) {
	if override != nil && *override != "" {
		return *override, nil, nil
	}

	h, err := p.holidays.FindByDate(ctx, holiday.DateFor(p.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrNoHolidayToday
		}
		return "", nil, err
	}
	return h.Prompt, h.Description, nil
}
