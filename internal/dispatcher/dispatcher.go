package dispatcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/client"
	"github.com/koungkub/appointment-notification-service/internal/message"
	"github.com/koungkub/appointment-notification-service/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("dispatcher",
	fx.Provide(
		fx.Annotate(
			NewDispatcher,
			fx.As(fx.Self()),
			fx.As(new(DispatchProvider)),
		),
		NewConfig,
	),
)

//go:generate mockgen -package mockdispatcher -destination ./mock/mockdispatcher.go . DispatchProvider
type DispatchProvider interface {
	Dispatch(ctx context.Context, req message.Request) (Result, error)
}

var _ DispatchProvider = (*Dispatcher)(nil)

// Result describes a dispatch that did not fail. Exactly one of Skipped or
// ReceiptID is meaningful.
type Result struct {
	Skipped   bool
	ReceiptID string
}

type Config struct {
	// PlaceholderPrefix marks destinations that were never filled in.
	PlaceholderPrefix string `envconfig:"DISPATCH_PLACEHOLDER_PREFIX" default:"REPLACE"`
}

func NewConfig() Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)

	return cfg
}

type Dispatcher struct {
	provider          client.PushProvider
	placeholderPrefix string
	collector         *metrics.DispatchCollector
	logger            *zap.Logger
}

type Params struct {
	fx.In

	Config    Config
	Provider  client.PushProvider
	Collector *metrics.DispatchCollector `optional:"true"`
	Logger    *zap.Logger
}

func NewDispatcher(params Params) (*Dispatcher, error) {
	collector := params.Collector
	if collector == nil {
		var err error
		if collector, err = metrics.NewDispatchCollector(nil); err != nil {
			return nil, err
		}
	}

	return &Dispatcher{
		provider:          params.Provider,
		placeholderPrefix: params.Config.PlaceholderPrefix,
		collector:         collector,
		logger:            params.Logger,
	}, nil
}

// IsPlaceholder reports whether destination is empty or still carries the
// placeholder marker.
func (d *Dispatcher) IsPlaceholder(destination string) bool {
	if destination == "" {
		return true
	}
	return d.placeholderPrefix != "" && strings.HasPrefix(destination, d.placeholderPrefix)
}

// Dispatch hands req to the push provider. Placeholder destinations are
// skipped without contacting the provider. Provider errors are returned
// as-is (wrapped) and never retried.
func (d *Dispatcher) Dispatch(ctx context.Context, req message.Request) (Result, error) {
	logger := d.logger.With(
		zap.String("dispatch_id", uuid.NewString()),
		zap.String("provider", d.provider.Name()),
		zap.String("title", req.Title),
	)

	if d.IsPlaceholder(req.Destination) {
		logger.Info("skip sending to placeholder token")
		d.collector.RecordDispatch(ctx, d.provider.Name(), metrics.OutcomeSkipped, 0)
		return Result{Skipped: true}, nil
	}

	start := time.Now()
	receipt, err := d.provider.Send(ctx, client.Message{
		Token: req.Destination,
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Metadata.Strings(),
	})
	if err != nil {
		d.collector.RecordDispatch(ctx, d.provider.Name(), metrics.OutcomeFailed, time.Since(start))
		logger.Error("failed to send notification", zap.Error(err))
		return Result{}, fmt.Errorf("send %q: %w", req.Title, err)
	}

	d.collector.RecordDispatch(ctx, d.provider.Name(), metrics.OutcomeSent, time.Since(start))
	logger.Info("notification sent", zap.String("receipt_id", receipt))

	return Result{ReceiptID: receipt}, nil
}

// DispatchAll dispatches reqs in order and stops at the first failure;
// later requests are not attempted.
func (d *Dispatcher) DispatchAll(ctx context.Context, reqs ...message.Request) ([]Result, error) {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		res, err := d.Dispatch(ctx, req)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
