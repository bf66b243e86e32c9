package client

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type FCMConfig struct {
	// ServiceAccount is either a path to the service account key file or
	// the JSON key itself.
	ServiceAccount   string `envconfig:"FIREBASE_SERVICE_ACCOUNT" default:"../firebase_credentials/service_account.json"`
	Sound            string `envconfig:"FCM_SOUND" default:"default"`
	AndroidChannelID string `envconfig:"FCM_ANDROID_CHANNEL_ID" default:"default"`
	Badge            int    `envconfig:"FCM_APNS_BADGE" default:"1"`
}

func NewFCMConfig() FCMConfig {
	var cfg FCMConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

var _ PushProvider = (*FCMClient)(nil)

type FCMClient struct {
	messaging messagingClient
	config    FCMConfig
	logger    *zap.Logger
}

type FCMParams struct {
	fx.In

	Config FCMConfig
	Logger *zap.Logger
}

func NewFCMClient(ctx context.Context, params FCMParams) (*FCMClient, error) {
	app, err := firebase.NewApp(ctx, nil, credentialOption(params.Config.ServiceAccount))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase messaging: %w", err)
	}

	params.Logger.Info("firebase messaging initialized")

	return newFCMClient(mc, params.Config, params.Logger), nil
}

func newFCMClient(mc messagingClient, cfg FCMConfig, logger *zap.Logger) *FCMClient {
	return &FCMClient{
		messaging: mc,
		config:    cfg,
		logger:    logger,
	}
}

func credentialOption(serviceAccount string) option.ClientOption {
	if strings.HasPrefix(strings.TrimSpace(serviceAccount), "{") {
		return option.WithCredentialsJSON([]byte(serviceAccount))
	}
	return option.WithCredentialsFile(serviceAccount)
}

func (c *FCMClient) Name() string {
	return ProviderFCM
}

func (c *FCMClient) Send(ctx context.Context, msg Message) (string, error) {
	id, err := c.messaging.Send(ctx, c.buildMessage(msg))
	if err != nil {
		if isInvalidToken(err) {
			return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		return "", err
	}

	return id, nil
}

// isInvalidToken reports whether FCM rejected the destination token itself.
// INVALID_ARGUMENT also covers payload problems (reserved data keys,
// oversized messages), so it only counts when the error names the
// registration token.
func isInvalidToken(err error) bool {
	if messaging.IsUnregistered(err) {
		return true
	}
	return messaging.IsInvalidArgument(err) &&
		strings.Contains(strings.ToLower(err.Error()), "registration token")
}

func (c *FCMClient) buildMessage(msg Message) *messaging.Message {
	badge := c.config.Badge

	return &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     c.config.Sound,
				ChannelID: c.config.AndroidChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: c.config.Sound,
					Badge: &badge,
				},
			},
		},
	}
}
