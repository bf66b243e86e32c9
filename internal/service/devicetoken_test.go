package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/koungkub/appointment-notification-service/internal/repository"
	mockrepository "github.com/koungkub/appointment-notification-service/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDeviceTokenService(ctrl *gomock.Controller) (*DeviceTokenService, *mockrepository.MockCacheProvider, *mockrepository.MockTokenPersistentProvider) {
	cache := mockrepository.NewMockCacheProvider(ctrl)
	persistent := mockrepository.NewMockTokenPersistentProvider(ctrl)

	service := NewDeviceTokenService(DeviceTokenServiceParams{
		CacheProvider:      cache,
		PersistentProvider: persistent,
		Logger:             zap.NewNop(),
	})
	service.now = func() time.Time { return fixedNow }

	return service, cache, persistent
}

func TestDeviceTokenService_Register(t *testing.T) {
	t.Run("stores a new token with the default device type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, cache, persistent := newTestDeviceTokenService(ctrl)

		persistent.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(repository.DeviceToken{}, gorm.ErrRecordNotFound)
		persistent.EXPECT().UpsertToken(gomock.Any(), &repository.DeviceToken{
			UserID:     42,
			Token:      "tok-1",
			DeviceType: "android",
			CreatedAt:  fixedNow,
			UpdatedAt:  fixedNow,
		}).DoAndReturn(func(_ context.Context, token *repository.DeviceToken) error {
			token.ID = 7
			return nil
		})
		cache.EXPECT().Delete(int64(42))

		token, err := service.Register(context.Background(), 42, " tok-1 ", "")

		require.NoError(t, err)
		assert.Equal(t, int64(7), token.ID)
		assert.Equal(t, "android", token.DeviceType)
	})

	t.Run("transfers ownership and invalidates both users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, cache, persistent := newTestDeviceTokenService(ctrl)
		created := fixedNow.Add(-24 * time.Hour)

		persistent.EXPECT().FindByToken(gomock.Any(), "tok-1").
			Return(repository.DeviceToken{ID: 7, UserID: 41, Token: "tok-1", CreatedAt: created}, nil)
		persistent.EXPECT().UpsertToken(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().Delete(int64(42), int64(41))

		token, err := service.Register(context.Background(), 42, "tok-1", "ios")

		require.NoError(t, err)
		assert.Equal(t, int64(42), token.UserID)
		assert.Equal(t, "ios", token.DeviceType)
		assert.Equal(t, created, token.CreatedAt)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _, _ := newTestDeviceTokenService(ctrl)

		_, err := service.Register(context.Background(), 42, "  ", "")
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = service.Register(context.Background(), 0, "tok-1", "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _, persistent := newTestDeviceTokenService(ctrl)
		persistent.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(repository.DeviceToken{}, errors.New("database error"))

		_, err := service.Register(context.Background(), 42, "tok-1", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database error")
	})
}

func TestDeviceTokenService_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, persistent := newTestDeviceTokenService(ctrl)
	tokens := deviceTokens(42, "tok-1", "tok-2")
	persistent.EXPECT().FindByUser(gomock.Any(), int64(42)).Return(tokens, nil)

	got, err := service.ListByUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, tokens, got)

	_, err = service.ListByUser(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeviceTokenService_Remove(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		setupMocks  func(*mockrepository.MockCacheProvider, *mockrepository.MockTokenPersistentProvider)
		expectedErr error
	}{
		{
			name:  "deletes and invalidates the owner",
			token: "tok-1",
			setupMocks: func(cache *mockrepository.MockCacheProvider, persistent *mockrepository.MockTokenPersistentProvider) {
				persistent.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(repository.DeviceToken{UserID: 42, Token: "tok-1"}, nil)
				persistent.EXPECT().DeleteByToken(gomock.Any(), "tok-1").Return(int64(1), nil)
				cache.EXPECT().Delete(int64(42))
			},
		},
		{
			name:  "unknown token",
			token: "tok-missing",
			setupMocks: func(_ *mockrepository.MockCacheProvider, persistent *mockrepository.MockTokenPersistentProvider) {
				persistent.EXPECT().FindByToken(gomock.Any(), "tok-missing").Return(repository.DeviceToken{}, gorm.ErrRecordNotFound)
			},
			expectedErr: ErrTokenNotFound,
		},
		{
			name:        "empty token",
			token:       "",
			setupMocks:  func(*mockrepository.MockCacheProvider, *mockrepository.MockTokenPersistentProvider) {},
			expectedErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, cache, persistent := newTestDeviceTokenService(ctrl)
			tt.setupMocks(cache, persistent)

			err := service.Remove(context.Background(), tt.token)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDeviceTokenService_RemoveByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, cache, persistent := newTestDeviceTokenService(ctrl)
	persistent.EXPECT().DeleteByUser(gomock.Any(), int64(42)).Return(int64(3), nil)
	cache.EXPECT().Delete(int64(42))

	removed, err := service.RemoveByUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestDeviceTokenService_Cleanup(t *testing.T) {
	t.Run("removes stale tokens and invalidates each owner once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, cache, persistent := newTestDeviceTokenService(ctrl)

		persistent.EXPECT().DeleteUpdatedBefore(gomock.Any(), fixedNow.Add(-90*24*time.Hour)).Return([]repository.DeviceToken{
			{UserID: 42, Token: "tok-1"},
			{UserID: 42, Token: "tok-2"},
			{UserID: 43, Token: "tok-3"},
		}, nil)
		cache.EXPECT().Delete(int64(42), int64(43))

		removed, err := service.Cleanup(context.Background(), 2160*time.Hour)

		require.NoError(t, err)
		assert.Equal(t, 3, removed)
	})

	t.Run("nothing stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _, persistent := newTestDeviceTokenService(ctrl)
		persistent.EXPECT().DeleteUpdatedBefore(gomock.Any(), gomock.Any()).Return([]repository.DeviceToken{}, nil)

		removed, err := service.Cleanup(context.Background(), time.Hour)

		require.NoError(t, err)
		assert.Zero(t, removed)
	})

	t.Run("rejects non-positive max age", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _, _ := newTestDeviceTokenService(ctrl)

		_, err := service.Cleanup(context.Background(), 0)

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
