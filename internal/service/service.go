package service

import (
	"errors"

	"go.uber.org/fx"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewNotificationService,
			fx.As(new(NotificationProvider)),
		),
		fx.Annotate(
			NewDeviceTokenService,
			fx.As(new(DeviceTokenProvider)),
		),
		fx.Annotate(
			NewReminderService,
			fx.As(new(ReminderProvider)),
		),
		NewNotificationConfig,
		NewReminderConfig,
	),
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoDeviceTokens  = errors.New("no device tokens registered")
	ErrNotDelivered    = errors.New("notification not delivered to any device")
	ErrTokenNotFound   = errors.New("device token not found")
)
