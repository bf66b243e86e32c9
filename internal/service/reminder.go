package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/appointment"
	"github.com/koungkub/appointment-notification-service/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const consultationLayout = "2006-01-02 15:04"

type ReminderProvider interface {
	CheckAndSend(ctx context.Context, now time.Time) (int, error)
}

var _ ReminderProvider = (*ReminderService)(nil)

type ReminderConfig struct {
	// Lead is how long before the start a reminder may go out.
	Lead time.Duration `envconfig:"REMINDER_LEAD" default:"1h"`
	// Grace keeps consultations that started recently eligible.
	Grace        time.Duration `envconfig:"REMINDER_GRACE" default:"15m"`
	DedupWindow  time.Duration `envconfig:"REMINDER_DEDUP_WINDOW" default:"2h"`
	MinRemaining time.Duration `envconfig:"REMINDER_MIN_REMAINING" default:"45m"`
	Timezone     string        `envconfig:"REMINDER_TIMEZONE" default:"UTC"`
}

func NewReminderConfig() ReminderConfig {
	var cfg ReminderConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

type ReminderService struct {
	config       ReminderConfig
	location     *time.Location
	consultation repository.ConsultationPersistentProvider
	notification NotificationProvider
	logger       *zap.Logger
}

type ReminderServiceParams struct {
	fx.In

	Config       ReminderConfig
	Consultation repository.ConsultationPersistentProvider
	Notification NotificationProvider
	Logger       *zap.Logger
}

func NewReminderService(params ReminderServiceParams) (*ReminderService, error) {
	location, err := time.LoadLocation(params.Config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("reminder timezone: %w", err)
	}

	return &ReminderService{
		config:       params.Config,
		location:     location,
		consultation: params.Consultation,
		notification: params.Notification,
		logger:       params.Logger,
	}, nil
}

// CheckAndSend sends reminders for today's and tomorrow's scheduled
// consultations that start within [now-Grace, now+Lead]. A consultation
// created within DedupWindow is only reminded while at least MinRemaining
// is left. Failures for one consultation are logged and do not stop the
// run. It returns the number of consultations reminded.
func (s *ReminderService) CheckAndSend(ctx context.Context, now time.Time) (int, error) {
	now = now.In(s.location)
	dates := []string{
		now.Format(time.DateOnly),
		now.AddDate(0, 0, 1).Format(time.DateOnly),
	}

	consultations, err := s.consultation.FindScheduled(ctx, dates)
	if err != nil {
		return 0, fmt.Errorf("find scheduled consultations: %w", err)
	}
	if len(consultations) == 0 {
		s.logger.Debug("no consultations need reminders")
		return 0, nil
	}

	sent := 0
	for _, c := range consultations {
		logger := s.logger.With(zap.Int64("consultation_id", c.ConsultationID))

		startsAt, err := time.ParseInLocation(consultationLayout, c.ConsultationDate+" "+c.StartTime, s.location)
		if err != nil {
			logger.Warn("invalid consultation start", zap.Error(err))
			continue
		}

		until := startsAt.Sub(now)
		if until < -s.config.Grace || until > s.config.Lead {
			continue
		}
		if !c.CreatedAt.Before(now.Add(-s.config.DedupWindow)) && until < s.config.MinRemaining {
			logger.Debug("skip reminder, consultation booked recently", zap.Duration("until", until))
			continue
		}

		if _, err := s.notification.SendReminder(ctx, detailsFromConsultation(c)); err != nil {
			logger.Warn("failed to send reminder", zap.Error(err))
			continue
		}
		logger.Info("reminder sent", zap.Duration("until", until))
		sent++
	}

	return sent, nil
}

func detailsFromConsultation(c repository.ScheduledConsultation) appointment.Details {
	details := appointment.Details{
		AppointmentID: c.ConsultationID,
		DoctorID:      c.DoctorID,
		PatientID:     c.PatientID,
		DoctorUserID:  c.DoctorUserID,
		PatientUserID: c.PatientUserID,
		PatientName:   fullName(c.PatientFirstname, c.PatientLastname),
		Date:          c.ConsultationDate,
		Time:          c.StartTime,
	}
	if name := fullName(c.DoctorFirstname, c.DoctorLastname); name != "" {
		details.DoctorName = "Dr. " + name
	}
	return details
}

func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
