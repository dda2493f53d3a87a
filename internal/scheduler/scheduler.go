package scheduler

import (
	"context"
	"errors"
	"log/slog"

	"postify/internal/pkg/config"
	"postify/internal/usecase"

	"github.com/robfig/cron/v3"
)

// Service triggers the daily distribution run. When no calendar entry exists
// for the day the run is a quiet no-op.
type Service struct {
	cron         *cron.Cron
	enabled      bool
	distribution usecase.DistributionUseCase
	logger       *slog.Logger
}

func NewService(cfg config.SchedulerConfig, distribution usecase.DistributionUseCase, logger *slog.Logger) (*Service, error) {
	s := &Service{
		cron:         cron.New(),
		enabled:      cfg.Enabled,
		distribution: distribution,
		logger:       logger,
	}

	if cfg.Enabled {
		if _, err := s.cron.AddFunc(cfg.Spec, s.run); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Service) Start() {
	if !s.enabled {
		s.logger.Info("scheduler disabled")
		return
	}
	s.cron.Start()
	s.logger.Info("scheduler started")
}

func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Service) run() {
	ctx := context.Background()

	result, err := s.distribution.DistributeToUsers(ctx)
	switch {
	case errors.Is(err, usecase.ErrNoHolidayToday):
		s.logger.Info("no holiday today, skipping scheduled distribution")
		return
	case errors.Is(err, usecase.ErrNoRecipients):
		s.logger.Info("no users, skipping scheduled user distribution")
	case err != nil:
		s.logger.Error("scheduled user distribution failed", slog.Any("error", err))
	default:
		s.logger.Info("scheduled user distribution started",
			slog.String("job_id", result.JobID.String()),
			slog.Int("total", result.Total))
	}

	result, err = s.distribution.DistributeToSubscribers(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrNoRecipients) {
			s.logger.Info("no subscribers, skipping scheduled distribution")
			return
		}
		s.logger.Error("scheduled subscriber distribution failed", slog.Any("error", err))
		return
	}
	s.logger.Info("scheduled subscriber distribution started",
		slog.String("job_id", result.JobID.String()),
		slog.Int("total", result.Total))
}
