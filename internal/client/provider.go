package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	ProviderFCM   = "fcm"
	ProviderRelay = "relay"
)

// ErrInvalidToken is returned when the provider rejects the destination
// token as unknown or malformed. Callers can drop the token.
var ErrInvalidToken = errors.New("invalid registration token")

//go:generate mockgen -package mockclient -destination ./mock/mockprovider.go . PushProvider
type PushProvider interface {
	Send(ctx context.Context, msg Message) (string, error)
	Name() string
}

type ProviderConfig struct {
	Provider string `envconfig:"PUSH_PROVIDER" default:"fcm"`
}

func NewProviderConfig() ProviderConfig {
	var cfg ProviderConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

type PushProviderParams struct {
	fx.In

	Config      ProviderConfig
	FCMConfig   FCMConfig
	RelayConfig RelayConfig
	Breakers    *BreakerRegistry
	Collector   *metrics.RelayCollector
	Logger      *zap.Logger
}

// NewPushProvider builds the provider selected by PUSH_PROVIDER. It is
// constructed once per process and shared by every dispatch.
func NewPushProvider(params PushProviderParams) (PushProvider, error) {
	switch params.Config.Provider {
	case ProviderFCM:
		return NewFCMClient(context.Background(), FCMParams{
			Config: params.FCMConfig,
			Logger: params.Logger,
		})
	case ProviderRelay:
		return NewRelayClient(RelayParams{
			Config:    params.RelayConfig,
			Breakers:  params.Breakers,
			Collector: params.Collector,
			Logger:    params.Logger,
		})
	default:
		return nil, fmt.Errorf("unsupported push provider %q", params.Config.Provider)
	}
}
