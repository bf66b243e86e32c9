package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/koungkub/appointment-notification-service/internal/metrics"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newTestRelayClient(t *testing.T, url string, breakerConfig BreakerConfig) *RelayClient {
	t.Helper()

	collector, err := metrics.NewRelayCollector(nil)
	require.NoError(t, err)

	return newTestRelayClientWithCollector(t, url, breakerConfig, collector)
}

func newTestRelayClientWithCollector(t *testing.T, url string, breakerConfig BreakerConfig, collector *metrics.RelayCollector) *RelayClient {
	t.Helper()

	c, err := NewRelayClient(RelayParams{
		Config: RelayConfig{
			URL:       url,
			SecretKey: "relay-secret",
			Timeout:   time.Second,
		},
		Breakers: NewBreakerRegistry(BreakerRegistryParams{
			Config: breakerConfig,
			Logger: zap.NewNop(),
		}),
		Collector: collector,
		Logger:    zap.NewNop(),
	})
	require.NoError(t, err)
	return c
}

func TestNewRelayClient(t *testing.T) {
	t.Run("requires a relay url", func(t *testing.T) {
		_, err := NewRelayClient(RelayParams{Config: RelayConfig{}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PUSH_RELAY_URL")
	})

	t.Run("extracts host and timeout", func(t *testing.T) {
		c := newTestRelayClient(t, "https://relay.example.com/v1/send", testBreakerConfig())

		assert.Equal(t, "relay.example.com", c.host)
		assert.Equal(t, time.Second, c.httpclient.Timeout)
		assert.Equal(t, ProviderRelay, c.Name())
	})
}

func TestRelayClient_Send_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, err := uuid.Parse(r.Header.Get("Idempotency-Key"))
		assert.NoError(t, err)

		var req RelayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, RelayRequest{
			To:        "validtoken123",
			Title:     "Appointment Confirmed",
			Body:      "Dr. Y confirmed your appointment",
			Data:      map[string]string{"appointmentId": "1"},
			SecretKey: "relay-secret",
		}, req)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message_id": "msg-001"}`))
	}))
	defer server.Close()

	c := newTestRelayClient(t, server.URL, testBreakerConfig())

	id, err := c.Send(context.Background(), Message{
		Token: "validtoken123",
		Title: "Appointment Confirmed",
		Body:  "Dr. Y confirmed your appointment",
		Data:  map[string]string{"appointmentId": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-001", id)
}

func TestRelayClient_Send_StatusHandling(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		invalidToken bool
	}{
		{"not found marks token invalid", http.StatusNotFound, true},
		{"gone marks token invalid", http.StatusGone, true},
		{"bad request", http.StatusBadRequest, false},
		{"unauthorized", http.StatusUnauthorized, false},
		{"internal server error", http.StatusInternalServerError, false},
		{"service unavailable", http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			c := newTestRelayClient(t, server.URL, testBreakerConfig())

			_, err := c.Send(context.Background(), Message{Token: "token", Title: "Test"})

			require.Error(t, err)
			assert.Equal(t, tt.invalidToken, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestRelayClient_Send_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := newTestRelayClient(t, server.URL, testBreakerConfig())

	_, err := c.Send(context.Background(), Message{Token: "token", Title: "Test"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode relay response")
}

func TestRelayClient_Send_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestRelayClient(t, server.URL, testBreakerConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, Message{Token: "token", Title: "Test"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}

func TestRelayClient_Send_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestRelayClient(t, server.URL, BreakerConfig{
		HalfOpenRequests: 1,
		OpenTimeout:      time.Minute,
		MinRequests:      2,
		FailurePercent:   50,
	})

	for range 2 {
		_, err := c.Send(context.Background(), Message{Token: "token", Title: "Test"})
		require.Error(t, err)
	}

	_, err := c.Send(context.Background(), Message{Token: "token", Title: "Test"})

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtractHost(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expected    string
		expectError bool
	}{
		{"https url", "https://relay.example.com/send", "relay.example.com", false},
		{"url with port", "http://localhost:8080/send", "localhost:8080", false},
		{"invalid url", "://invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, err := extractHost(tt.url)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, host)
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestFailureReason(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"open breaker", gobreaker.ErrOpenState, metrics.FailureBreakerOpen},
		{"half-open limit", gobreaker.ErrTooManyRequests, metrics.FailureBreakerOpen},
		{"wrapped deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), metrics.FailureTimeout},
		{"client timeout", fmt.Errorf("post: %w", timeoutError{}), metrics.FailureTimeout},
		{"canceled", context.Canceled, metrics.FailureCanceled},
		{"invalid token", fmt.Errorf("%w: relay responded with status 410", ErrInvalidToken), metrics.FailureInvalidToken},
		{"relay status", fmt.Errorf("%w %d", errRelayStatus, 502), metrics.FailureRelayStatus},
		{"decode", fmt.Errorf("%w: %w", errRelayDecode, errors.New("unexpected EOF")), metrics.FailureDecode},
		{"anything else", errors.New("boom"), metrics.FailureOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failureReason(tt.err))
		})
	}
}

func TestRelayClient_Send_RecordsFailureReason(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		reason     string
	}{
		{"accepted", http.StatusOK, `{"message_id": "msg-001"}`, ""},
		{"gone token", http.StatusGone, "", metrics.FailureInvalidToken},
		{"relay failure", http.StatusBadGateway, "", metrics.FailureRelayStatus},
		{"rejected request", http.StatusBadRequest, "", metrics.FailureRelayStatus},
		{"malformed body", http.StatusOK, "not json", metrics.FailureDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			reader := sdkmetric.NewManualReader()
			provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
			collector, err := metrics.NewRelayCollector(provider.Meter("test"))
			require.NoError(t, err)

			c := newTestRelayClientWithCollector(t, server.URL, testBreakerConfig(), collector)
			_, _ = c.Send(context.Background(), Message{Token: "token", Title: "Test"})

			var rm metricdata.ResourceMetrics
			require.NoError(t, reader.Collect(context.Background(), &rm))

			var reasons []string
			for _, sm := range rm.ScopeMetrics {
				for _, m := range sm.Metrics {
					if m.Name != "push.relay.send.failures" {
						continue
					}
					for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
						reason, _ := dp.Attributes.Value("failure.reason")
						reasons = append(reasons, reason.AsString())
					}
				}
			}

			if tt.reason == "" {
				assert.Empty(t, reasons)
				return
			}
			assert.Equal(t, []string{tt.reason}, reasons)
		})
	}
}
