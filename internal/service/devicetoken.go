package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/koungkub/appointment-notification-service/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DeviceTokenProvider interface {
	Register(ctx context.Context, userID int64, token string, deviceType string) (repository.DeviceToken, error)
	ListByUser(ctx context.Context, userID int64) ([]repository.DeviceToken, error)
	Remove(ctx context.Context, token string) error
	RemoveByUser(ctx context.Context, userID int64) (int64, error)
	Cleanup(ctx context.Context, maxAge time.Duration) (int, error)
}

var _ DeviceTokenProvider = (*DeviceTokenService)(nil)

type DeviceTokenService struct {
	cacheProvider      repository.CacheProvider
	persistentProvider repository.TokenPersistentProvider
	logger             *zap.Logger
	now                func() time.Time
}

type DeviceTokenServiceParams struct {
	fx.In

	CacheProvider      repository.CacheProvider
	PersistentProvider repository.TokenPersistentProvider
	Logger             *zap.Logger
}

func NewDeviceTokenService(params DeviceTokenServiceParams) *DeviceTokenService {
	return &DeviceTokenService{
		cacheProvider:      params.CacheProvider,
		persistentProvider: params.PersistentProvider,
		logger:             params.Logger,
		now:                time.Now,
	}
}

// Register stores token for userID. A token already owned by another user
// is moved to userID.
func (s *DeviceTokenService) Register(ctx context.Context, userID int64, token string, deviceType string) (repository.DeviceToken, error) {
	token = strings.TrimSpace(token)
	if userID <= 0 || token == "" {
		return repository.DeviceToken{}, fmt.Errorf("%w: user id and token are required", ErrInvalidArgument)
	}
	if deviceType == "" {
		deviceType = repository.DefaultDeviceType
	}

	affected := []int64{userID}
	existing, err := s.persistentProvider.FindByToken(ctx, token)
	switch {
	case err == nil:
		if existing.UserID != userID {
			s.logger.Info("device token ownership transferred",
				zap.Int64("from_user_id", existing.UserID),
				zap.Int64("to_user_id", userID),
			)
			affected = append(affected, existing.UserID)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return repository.DeviceToken{}, fmt.Errorf("find device token: %w", err)
	}

	now := s.now().UTC()
	record := repository.DeviceToken{
		UserID:     userID,
		Token:      token,
		DeviceType: deviceType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.persistentProvider.UpsertToken(ctx, &record); err != nil {
		return repository.DeviceToken{}, fmt.Errorf("store device token: %w", err)
	}
	if !existing.CreatedAt.IsZero() {
		record.CreatedAt = existing.CreatedAt
	}

	s.cacheProvider.Delete(affected...)
	s.logger.Info("device token registered", zap.Int64("user_id", userID), zap.String("device_type", deviceType))

	return record, nil
}

func (s *DeviceTokenService) ListByUser(ctx context.Context, userID int64) ([]repository.DeviceToken, error) {
	if userID <= 0 {
		return []repository.DeviceToken{}, fmt.Errorf("%w: user id must be positive", ErrInvalidArgument)
	}

	tokens, err := s.persistentProvider.FindByUser(ctx, userID)
	if err != nil {
		return []repository.DeviceToken{}, fmt.Errorf("find device tokens: %w", err)
	}
	return tokens, nil
}

func (s *DeviceTokenService) Remove(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidArgument)
	}

	existing, err := s.persistentProvider.FindByToken(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("find device token: %w", err)
	}

	if _, err := s.persistentProvider.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("delete device token: %w", err)
	}
	s.cacheProvider.Delete(existing.UserID)

	return nil
}

func (s *DeviceTokenService) RemoveByUser(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("%w: user id must be positive", ErrInvalidArgument)
	}

	removed, err := s.persistentProvider.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete device tokens: %w", err)
	}
	s.cacheProvider.Delete(userID)

	return removed, nil
}

// Cleanup deletes tokens that have not been refreshed within maxAge.
func (s *DeviceTokenService) Cleanup(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("%w: max age must be positive", ErrInvalidArgument)
	}

	cutoff := s.now().UTC().Add(-maxAge)
	removed, err := s.persistentProvider.DeleteUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete stale device tokens: %w", err)
	}

	seen := make(map[int64]struct{}, len(removed))
	users := make([]int64, 0, len(removed))
	for _, token := range removed {
		if _, ok := seen[token.UserID]; ok {
			continue
		}
		seen[token.UserID] = struct{}{}
		users = append(users, token.UserID)
	}
	if len(users) > 0 {
		s.cacheProvider.Delete(users...)
	}

	s.logger.Info("stale device tokens removed", zap.Int("removed", len(removed)), zap.Time("cutoff", cutoff))
	return len(removed), nil
}
