package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

type DispatchCollector struct {
	dispatchCount    metric.Int64Counter
	dispatchDuration metric.Float64Histogram
}

func NewDispatchCollector(meter metric.Meter) (*DispatchCollector, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}

	dispatchCount, err := meter.Int64Counter(
		"push.dispatch.requests",
		metric.WithDescription("Push notifications handled by the dispatcher"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	dispatchDuration, err := meter.Float64Histogram(
		"push.dispatch.duration",
		metric.WithDescription("Time spent handing a notification to the provider"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &DispatchCollector{
		dispatchCount:    dispatchCount,
		dispatchDuration: dispatchDuration,
	}, nil
}

// RecordDispatch records one dispatch. Skipped dispatches never reach the
// provider, so only the counter is updated for them.
func (c *DispatchCollector) RecordDispatch(ctx context.Context, provider string, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("push.provider", provider),
		attribute.String("push.outcome", outcome),
	)

	c.dispatchCount.Add(ctx, 1, attrs)
	if outcome != OutcomeSkipped {
		c.dispatchDuration.Record(ctx, duration.Seconds(), attrs)
	}
}
