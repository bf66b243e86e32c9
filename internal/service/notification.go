package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/appointment"
	"github.com/koungkub/appointment-notification-service/internal/client"
	"github.com/koungkub/appointment-notification-service/internal/dispatcher"
	"github.com/koungkub/appointment-notification-service/internal/message"
	"github.com/koungkub/appointment-notification-service/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . NotificationProvider,DeviceTokenProvider,ReminderProvider
type NotificationProvider interface {
	SendToUser(ctx context.Context, userID int64, content message.Content) (Summary, error)
	NotifyDoctorOnBooking(ctx context.Context, details appointment.Details) (Summary, error)
	NotifyPatientOnConfirmation(ctx context.Context, details appointment.Details) (Summary, error)
	SendReminder(ctx context.Context, details appointment.Details) (Summary, error)
}

var _ NotificationProvider = (*NotificationService)(nil)

// Summary counts the per-device outcomes of one fan-out.
type Summary struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
	Removed int `json:"removed"`
}

func (s Summary) add(other Summary) Summary {
	return Summary{
		Sent:    s.Sent + other.Sent,
		Skipped: s.Skipped + other.Skipped,
		Failed:  s.Failed + other.Failed,
		Removed: s.Removed + other.Removed,
	}
}

type NotificationConfig struct {
	MaxConcurrency int `envconfig:"NOTIFY_MAX_CONCURRENCY" default:"10"`
}

func NewNotificationConfig() NotificationConfig {
	var cfg NotificationConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

type NotificationService struct {
	cacheProvider      repository.CacheProvider
	persistentProvider repository.TokenPersistentProvider
	dispatcher         dispatcher.DispatchProvider
	maxConcurrency     int
	logger             *zap.Logger
	now                func() time.Time
}

type NotificationServiceParams struct {
	fx.In

	Config             NotificationConfig
	CacheProvider      repository.CacheProvider
	PersistentProvider repository.TokenPersistentProvider
	Dispatcher         dispatcher.DispatchProvider
	Logger             *zap.Logger
}

func NewNotificationService(params NotificationServiceParams) *NotificationService {
	maxConcurrency := params.Config.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	return &NotificationService{
		cacheProvider:      params.CacheProvider,
		persistentProvider: params.PersistentProvider,
		dispatcher:         params.Dispatcher,
		maxConcurrency:     maxConcurrency,
		logger:             params.Logger,
		now:                time.Now,
	}
}

// SendToUser delivers content to every device registered for userID.
// Tokens the provider rejects as invalid are deleted. The error is
// ErrNotDelivered when no device accepted the notification and at least
// one dispatch failed.
func (s *NotificationService) SendToUser(ctx context.Context, userID int64, content message.Content) (Summary, error) {
	if userID <= 0 {
		return Summary{}, fmt.Errorf("%w: user id must be positive", ErrInvalidArgument)
	}
	if content.Title == "" {
		return Summary{}, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}

	tokens, err := s.getDeviceTokens(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	if len(tokens) == 0 {
		return Summary{}, fmt.Errorf("user %d: %w", userID, ErrNoDeviceTokens)
	}

	content.Metadata = content.Metadata.With("timestamp", message.String(s.now().UTC().Format(time.RFC3339)))

	type outcome struct {
		result dispatcher.Result
		err    error
	}
	outcomes := make([]outcome, len(tokens))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency)
	for i, token := range tokens {
		g.Go(func() error {
			result, err := s.dispatcher.Dispatch(ctx, content.To(token.Token))
			outcomes[i] = outcome{result: result, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var (
		summary Summary
		invalid []string
	)
	for i, o := range outcomes {
		switch {
		case o.err != nil:
			summary.Failed++
			if errors.Is(o.err, client.ErrInvalidToken) {
				invalid = append(invalid, tokens[i].Token)
			}
		case o.result.Skipped:
			summary.Skipped++
		default:
			summary.Sent++
		}
	}
	summary.Removed = s.removeInvalidTokens(ctx, userID, invalid)

	s.logger.Info("notification fan-out finished",
		zap.Int64("user_id", userID),
		zap.String("title", content.Title),
		zap.Int("sent", summary.Sent),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Int("removed", summary.Removed),
	)

	if summary.Sent == 0 && summary.Failed > 0 {
		return summary, fmt.Errorf("user %d: %w", userID, ErrNotDelivered)
	}
	return summary, nil
}

func (s *NotificationService) NotifyDoctorOnBooking(ctx context.Context, details appointment.Details) (Summary, error) {
	return s.SendToUser(ctx, details.DoctorUserID, appointment.NewBooking(details))
}

func (s *NotificationService) NotifyPatientOnConfirmation(ctx context.Context, details appointment.Details) (Summary, error) {
	return s.SendToUser(ctx, details.PatientUserID, appointment.Confirmed(details))
}

// SendReminder notifies the patient and then the doctor. It succeeds when
// at least one of them received the reminder.
func (s *NotificationService) SendReminder(ctx context.Context, details appointment.Details) (Summary, error) {
	patient, patientErr := s.SendToUser(ctx, details.PatientUserID, appointment.PatientReminder(details))
	doctor, doctorErr := s.SendToUser(ctx, details.DoctorUserID, appointment.DoctorReminder(details))

	summary := patient.add(doctor)
	if patientErr != nil && doctorErr != nil {
		return summary, errors.Join(
			fmt.Errorf("patient: %w", patientErr),
			fmt.Errorf("doctor: %w", doctorErr),
		)
	}
	return summary, nil
}

func (s *NotificationService) getDeviceTokens(ctx context.Context, userID int64) ([]repository.DeviceToken, error) {
	tokens, version, err := s.cacheProvider.Get(userID)
	if err == nil {
		return tokens, nil
	}

	tokens, err = s.persistentProvider.FindByUser(ctx, userID)
	if err != nil {
		return []repository.DeviceToken{}, fmt.Errorf("find device tokens: %w", err)
	}

	if err := s.cacheProvider.Set(userID, version, tokens); err != nil {
		s.logger.Debug("device tokens not cached", zap.Int64("user_id", userID), zap.Error(err))
	}
	return tokens, nil
}

func (s *NotificationService) removeInvalidTokens(ctx context.Context, userID int64, tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}

	removed := 0
	for _, token := range tokens {
		affected, err := s.persistentProvider.DeleteByToken(ctx, token)
		if err != nil {
			s.logger.Error("failed to remove invalid device token", zap.Int64("user_id", userID), zap.Error(err))
			continue
		}
		removed += int(affected)
	}
	s.cacheProvider.Delete(userID)

	s.logger.Warn("removed invalid device tokens", zap.Int64("user_id", userID), zap.Int("removed", removed))
	return removed
}
