package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
		NewConfig,
	),
	fx.Invoke(func(*Scheduler) {}),
)

const (
	TagReminders    = "reminders"
	TagTokenCleanup = "token-cleanup"
)

type Config struct {
	Enabled          bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	ReminderCron     string        `envconfig:"REMINDER_CRON" default:"*/15 * * * *"`
	TokenCleanupCron string        `envconfig:"TOKEN_CLEANUP_CRON" default:"0 3 * * *"`
	TokenMaxAge      time.Duration `envconfig:"TOKEN_MAX_AGE" default:"2160h"`
	JobTimeout       time.Duration `envconfig:"SCHEDULER_JOB_TIMEOUT" default:"5m"`
}

func NewConfig() Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Scheduler runs the reminder and token cleanup jobs in UTC. A job never
// overlaps with a previous run of itself.
type Scheduler struct {
	engine      *gocron.Scheduler
	reminder    service.ReminderProvider
	deviceToken service.DeviceTokenProvider
	config      Config
	logger      *zap.Logger
	now         func() time.Time
}

type Params struct {
	fx.In

	Config      Config
	Reminder    service.ReminderProvider
	DeviceToken service.DeviceTokenProvider
	Logger      *zap.Logger
}

func NewScheduler(lc fx.Lifecycle, params Params) (*Scheduler, error) {
	s, err := newScheduler(params)
	if err != nil {
		return nil, err
	}

	if !params.Config.Enabled {
		params.Logger.Info("scheduler disabled")
		return s, nil
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.engine.StartAsync()
			s.logger.Info("scheduler started",
				zap.String("reminder_cron", s.config.ReminderCron),
				zap.String("token_cleanup_cron", s.config.TokenCleanupCron),
			)
			return s.engine.RunByTag(TagReminders)
		},
		OnStop: func(_ context.Context) error {
			s.engine.Stop()
			s.logger.Info("scheduler stopped")
			return nil
		},
	})

	return s, nil
}

func newScheduler(params Params) (*Scheduler, error) {
	s := &Scheduler{
		engine:      gocron.NewScheduler(time.UTC),
		reminder:    params.Reminder,
		deviceToken: params.DeviceToken,
		config:      params.Config,
		logger:      params.Logger,
		now:         time.Now,
	}
	s.engine.SingletonModeAll()

	if _, err := s.engine.Cron(params.Config.ReminderCron).Tag(TagReminders).Do(s.RunReminders); err != nil {
		return nil, fmt.Errorf("schedule reminders: %w", err)
	}
	if _, err := s.engine.Cron(params.Config.TokenCleanupCron).Tag(TagTokenCleanup).Do(s.RunTokenCleanup); err != nil {
		return nil, fmt.Errorf("schedule token cleanup: %w", err)
	}

	return s, nil
}

func (s *Scheduler) RunReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	sent, err := s.reminder.CheckAndSend(ctx, s.now())
	if err != nil {
		s.logger.Error("reminder check failed", zap.Error(err))
		return
	}
	s.logger.Info("reminder check finished", zap.Int("sent", sent))
}

func (s *Scheduler) RunTokenCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	removed, err := s.deviceToken.Cleanup(ctx, s.config.TokenMaxAge)
	if err != nil {
		s.logger.Error("device token cleanup failed", zap.Error(err))
		return
	}
	s.logger.Info("device token cleanup finished", zap.Int("removed", removed))
}
