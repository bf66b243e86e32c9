package metrics

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	FailureBreakerOpen  = "breaker_open"
	FailureTimeout      = "timeout"
	FailureCanceled     = "canceled"
	FailureInvalidToken = "invalid_token"
	FailureRelayStatus  = "relay_status"
	FailureDecode       = "decode"
	FailureOther        = "other"
)

// RelayCollector records sends made through the push relay and the state of
// the breaker guarding each relay host.
type RelayCollector struct {
	sends              metric.Int64Counter
	sendDuration       metric.Float64Histogram
	failures           metric.Int64Counter
	breakerState       metric.Int64Gauge
	breakerTransitions metric.Int64Counter
}

func NewRelayCollector(meter metric.Meter) (*RelayCollector, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}

	c := &RelayCollector{}
	var err error

	if c.sends, err = meter.Int64Counter(
		"push.relay.sends",
		metric.WithDescription("Notifications posted to the push relay"),
		metric.WithUnit("{send}"),
	); err != nil {
		return nil, err
	}

	if c.sendDuration, err = meter.Float64Histogram(
		"push.relay.send.duration",
		metric.WithDescription("Round trip time of a relay send"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if c.failures, err = meter.Int64Counter(
		"push.relay.send.failures",
		metric.WithDescription("Relay sends that did not yield a receipt"),
		metric.WithUnit("{send}"),
	); err != nil {
		return nil, err
	}

	if c.breakerState, err = meter.Int64Gauge(
		"push.relay.breaker.state",
		metric.WithDescription("Relay breaker state (0=closed, 1=half-open, 2=open)"),
		metric.WithUnit("{state}"),
	); err != nil {
		return nil, err
	}

	if c.breakerTransitions, err = meter.Int64Counter(
		"push.relay.breaker.transitions",
		metric.WithDescription("Relay breaker state transitions"),
		metric.WithUnit("{transition}"),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RecordSend counts one relay send. statusCode is zero when no response
// arrived; reason is one of the Failure constants, or empty on success.
func (c *RelayCollector) RecordSend(ctx context.Context, host string, statusCode int, elapsed time.Duration, reason string) {
	attrs := metric.WithAttributes(
		attribute.String("relay.host", host),
		attribute.Int("http.response.status_code", statusCode),
	)
	c.sends.Add(ctx, 1, attrs)
	c.sendDuration.Record(ctx, elapsed.Seconds(), attrs)

	if reason == "" {
		return
	}
	c.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("relay.host", host),
		attribute.String("failure.reason", reason),
	))
}

func (c *RelayCollector) RecordBreakerState(ctx context.Context, host string, state gobreaker.State) {
	c.breakerState.Record(ctx, int64(state), metric.WithAttributes(
		attribute.String("relay.host", host),
	))
}

func (c *RelayCollector) RecordBreakerTransition(ctx context.Context, host string, from, to gobreaker.State) {
	c.breakerTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("relay.host", host),
		attribute.String("breaker.from", from.String()),
		attribute.String("breaker.to", to.String()),
	))
}
