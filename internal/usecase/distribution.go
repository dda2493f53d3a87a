package usecase

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"postify/internal/domain/distribution"
	"postify/internal/domain/holiday"
	"postify/internal/domain/recipient"
	"postify/internal/imaging"
	"postify/internal/infra"
	"postify/internal/pkg/clock"
	"postify/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoHolidayToday = errors.New("no holiday found for today")
	ErrNoRecipients   = errors.New("no recipients found")
	ErrJobNotFound    = errors.New("distribution job not found")
)

// StartResult is what a distribution start call hands back to the caller.
// Failed is set when base image synthesis died before the fan-out began; the
// job is still registered so the failure is pollable.
type StartResult struct {
	JobID   uuid.UUID
	Holiday string
	Total   int
	Failed  bool
	Error   string
}

type DistributionUseCase interface {
	DistributeToUsers(ctx context.Context) (StartResult, error)
	DistributeToSubscribers(ctx context.Context) (StartResult, error)
	Status(jobID uuid.UUID) (distribution.Snapshot, error)
}

// target is one fan-out recipient, flattened to what the loop needs.
type target struct {
	id    uuid.UUID
	phone string
	cust  recipient.Customization
}

type distributionUseCaseImpl struct {
	users       UserRepository
	subscribers SubscriberRepository
	holidays    HolidayRepository
	prompts     PromptWriter
	userSynth   Synthesizer
	subSynth    Synthesizer
	compositor  Compositor
	notifier    Notifier
	registry    *distribution.Registry
	pacer       Pacer
	sleep       func(time.Duration)
	clock       clock.Clock
	logger      *slog.Logger
}

func NewDistributionUseCase(
	users UserRepository,
	subscribers SubscriberRepository,
	holidays HolidayRepository,
	prompts PromptWriter,
	userSynth Synthesizer,
	subSynth Synthesizer,
	compositor Compositor,
	notifier Notifier,
	registry *distribution.Registry,
	pacer Pacer,
	clock clock.Clock,
	logger *slog.Logger,
) DistributionUseCase {
	return &distributionUseCaseImpl{
		users:       users,
		subscribers: subscribers,
		holidays:    holidays,
		prompts:     prompts,
		userSynth:   userSynth,
		subSynth:    subSynth,
		compositor:  compositor,
		notifier:    notifier,
		registry:    registry,
		pacer:       pacer,
		sleep:       time.Sleep,
		clock:       clock,
		logger:      logger,
	}
}

// DistributeToUsers synthesizes the base image before answering, so a
// synthesis failure surfaces in the HTTP response. The job is registered
// either way; on failure it is already terminal when the caller sees it.
func (d *distributionUseCaseImpl) DistributeToUsers(ctx context.Context) (StartResult, error) {
	h, err := d.todaysHoliday(ctx)
	if err != nil {
		return StartResult{}, err
	}

	users, err := d.users.ListForDistribution(ctx)
	if err != nil {
		return StartResult{}, err
	}
	if len(users) == 0 {
		return StartResult{}, ErrNoRecipients
	}

	targets := make([]target, len(users))
	for i, u := range users {
		targets[i] = target{id: u.ID, phone: u.Phone, cust: u.Customization()}
	}

	job := distribution.NewJob(distribution.AudienceUsers, h.Prompt, len(targets), d.clock.Now())
	d.registry.Register(job)

	pc, base, err := d.synthesizeBase(ctx, d.userSynth, h)
	if err != nil {
		job.Fail(err.Error(), d.clock.Now())
		return StartResult{
			JobID:   job.ID(),
			Holiday: h.Prompt,
			Total:   len(targets),
			Failed:  true,
			Error:   err.Error(),
		}, nil
	}

	go d.fanOut(job, targets, base, pc.Caption)

	return StartResult{JobID: job.ID(), Holiday: h.Prompt, Total: len(targets)}, nil
}

// DistributeToSubscribers answers as soon as the job is registered; synthesis
// runs in the background and a failure there marks the job failed.
func (d *distributionUseCaseImpl) DistributeToSubscribers(ctx context.Context) (StartResult, error) {
	h, err := d.todaysHoliday(ctx)
	if err != nil {
		return StartResult{}, err
	}

	subs, err := d.subscribers.ListForDistribution(ctx)
	if err != nil {
		return StartResult{}, err
	}
	if len(subs) == 0 {
		return StartResult{}, ErrNoRecipients
	}

	targets := make([]target, len(subs))
	for i, s := range subs {
		targets[i] = target{id: s.ID, phone: s.Phone, cust: s.Customization()}
	}

	job := distribution.NewJob(distribution.AudienceSubscribers, h.Prompt, len(targets), d.clock.Now())
	d.registry.Register(job)

	go func() {
		pc, base, err := d.synthesizeBase(context.Background(), d.subSynth, h)
		if err != nil {
			job.Fail(err.Error(), d.clock.Now())
			d.logger.Error("base image synthesis failed",
				slog.String("job_id", job.ID().String()), slog.Any("error", err))
			return
		}
		d.fanOut(job, targets, base, pc.Caption)
	}()

	return StartResult{JobID: job.ID(), Holiday: h.Prompt, Total: len(targets)}, nil
}

func (d *distributionUseCaseImpl) Status(jobID uuid.UUID) (distribution.Snapshot, error) {
	job, ok := d.registry.Find(jobID)
	if !ok {
		return distribution.Snapshot{}, ErrJobNotFound
	}
	return job.Snapshot(), nil
}

func (d *distributionUseCaseImpl) todaysHoliday(ctx context.Context) (holiday.Holiday, error) {
	h, err := d.holidays.FindByDate(ctx, holiday.DateFor(d.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return holiday.Holiday{}, ErrNoHolidayToday
		}
		return holiday.Holiday{}, err
	}
	return h, nil
}

func (d *distributionUseCaseImpl) synthesizeBase(ctx context.Context, synth Synthesizer, h holiday.Holiday) (distribution.PostCopy, image.Image, error) {
	pc, err := d.prompts.ComposePost(ctx, h.Prompt, h.Description)
	if err != nil {
		return distribution.PostCopy{}, nil, errs.Wrap(err, "failed to compose post")
	}
	base, err := synth.Synthesize(ctx, pc.Prompt)
	if err != nil {
		return distribution.PostCopy{}, nil, errs.Wrap(err, "image generation failed")
	}
	return pc, base, nil
}

// fanOut walks the recipient snapshot sequentially. Each recipient's image is
// composed before the pacing delay so the wait covers only the send; the
// first send goes out immediately. One recipient's failure never stops the
// run.
func (d *distributionUseCaseImpl) fanOut(job *distribution.Job, targets []target, base image.Image, caption string) {
	for i, t := range targets {
		encoded, err := d.composeAndEncode(base, t.cust)
		if err != nil {
			job.RecordFailure(distribution.Outcome{
				RecipientID: t.id,
				Phone:       t.phone,
				Error:       err.Error(),
			})
			continue
		}

		if i > 0 {
			delay := d.pacer.Delay()
			d.logger.Info("pacing before next send",
				slog.String("job_id", job.ID().String()),
				slog.String("phone", t.phone),
				slog.Duration("delay", delay))
			d.sleep(delay)
		}

		resp, err := d.notifier.SendMedia(context.Background(), t.phone, encoded, caption)
		if err != nil {
			job.RecordFailure(distribution.Outcome{
				RecipientID: t.id,
				Phone:       t.phone,
				Error:       err.Error(),
			})
			continue
		}

		job.RecordSuccess(distribution.Outcome{
			RecipientID: t.id,
			Phone:       t.phone,
			Response:    resp,
		})
	}

	job.Complete(d.clock.Now())

	snap := job.Snapshot()
	d.logger.Info("distribution completed",
		slog.String("job_id", snap.ID.String()),
		slog.Int("successful", snap.Successful),
		slog.Int("failed", snap.Failed))
}

func (d *distributionUseCaseImpl) composeAndEncode(base image.Image, cust recipient.Customization) (string, error) {
	img, err := d.compositor.Compose(base, cust)
	if err != nil {
		return "", err
	}
	return imaging.EncodeBase64(img)
}
