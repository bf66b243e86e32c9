package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/metrics"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	errRelayStatus = errors.New("relay responded with unexpected status")
	errRelayDecode = errors.New("decode relay response")
)

var _ PushProvider = (*RelayClient)(nil)

// RelayClient delivers notifications through an HTTP push relay that
// fronts the real provider.
type RelayClient struct {
	httpclient *http.Client
	url        string
	host       string
	secretKey  string
	breakers   *BreakerRegistry
	collector  *metrics.RelayCollector
	logger     *zap.Logger
}

type RelayConfig struct {
	URL       string        `envconfig:"PUSH_RELAY_URL"`
	SecretKey string        `envconfig:"PUSH_RELAY_SECRET_KEY"`
	Timeout   time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
}

func NewRelayConfig() RelayConfig {
	var cfg RelayConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

type RelayParams struct {
	fx.In

	Config    RelayConfig
	Breakers  *BreakerRegistry
	Collector *metrics.RelayCollector
	Logger    *zap.Logger
}

func NewRelayClient(params RelayParams) (*RelayClient, error) {
	if params.Config.URL == "" {
		return nil, errors.New("PUSH_RELAY_URL is required for the relay provider")
	}

	host, err := extractHost(params.Config.URL)
	if err != nil {
		return nil, err
	}

	collector := params.Collector
	if collector == nil {
		if collector, err = metrics.NewRelayCollector(nil); err != nil {
			return nil, err
		}
	}

	return &RelayClient{
		httpclient: &http.Client{
			Timeout: params.Config.Timeout,
		},
		url:       params.Config.URL,
		host:      host,
		secretKey: params.Config.SecretKey,
		breakers:  params.Breakers,
		collector: collector,
		logger:    params.Logger,
	}, nil
}

func (c *RelayClient) Name() string {
	return ProviderRelay
}

func (c *RelayClient) Send(ctx context.Context, msg Message) (string, error) {
	start := time.Now()

	breaker := c.breakers.For(c.host)
	c.collector.RecordBreakerState(ctx, c.host, breaker.State())

	id, statusCode, err := c.send(ctx, breaker, msg)
	if err != nil {
		c.collector.RecordSend(ctx, c.host, statusCode, time.Since(start), failureReason(err))
		return "", err
	}
	c.collector.RecordSend(ctx, c.host, statusCode, time.Since(start), "")

	c.logger.Debug("relay accepted notification",
		zap.String("host", c.host),
		zap.String("message_id", id),
	)

	return id, nil
}

func (c *RelayClient) send(ctx context.Context, breaker *relayBreaker, msg Message) (string, int, error) {
	payload, err := json.Marshal(RelayRequest{
		To:        msg.Token,
		Title:     msg.Title,
		Body:      msg.Body,
		Data:      msg.Data,
		SecretKey: c.secretKey,
	})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := breaker.Execute(func() (relayResponse, error) {
		return c.do(req)
	})
	if err != nil {
		return "", resp.StatusCode, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return "", resp.StatusCode, fmt.Errorf("%w: relay responded with status %d", ErrInvalidToken, resp.StatusCode)
	default:
		return "", resp.StatusCode, fmt.Errorf("%w %d", errRelayStatus, resp.StatusCode)
	}

	var body RelayResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", resp.StatusCode, fmt.Errorf("%w: %w", errRelayDecode, err)
	}

	return body.MessageID, resp.StatusCode, nil
}

// do performs one relay round trip. Only 5xx responses count as breaker
// failures; 4xx answers are about the message, not relay health.
func (c *RelayClient) do(req *http.Request) (relayResponse, error) {
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return relayResponse{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return relayResponse{StatusCode: resp.StatusCode}, err
	}

	result := relayResponse{Body: raw, StatusCode: resp.StatusCode}
	if resp.StatusCode >= http.StatusInternalServerError {
		return result, fmt.Errorf("%w %d", errRelayStatus, resp.StatusCode)
	}

	return result, nil
}

// failureReason maps a relay send error to its metrics.Failure label.
func failureReason(err error) string {
	var netErr net.Error

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return metrics.FailureBreakerOpen
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.FailureTimeout
	case errors.Is(err, context.Canceled):
		return metrics.FailureCanceled
	case errors.As(err, &netErr) && netErr.Timeout():
		return metrics.FailureTimeout
	case errors.Is(err, ErrInvalidToken):
		return metrics.FailureInvalidToken
	case errors.Is(err, errRelayStatus):
		return metrics.FailureRelayStatus
	case errors.Is(err, errRelayDecode):
		return metrics.FailureDecode
	default:
		return metrics.FailureOther
	}
}

func extractHost(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}
