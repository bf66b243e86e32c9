package client

import (
	"context"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/metrics"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type relayResponse struct {
	Body       []byte
	StatusCode int
}

type relayBreaker = gobreaker.CircuitBreaker[relayResponse]

// BreakerRegistry keeps one breaker per relay host, created on first use.
type BreakerRegistry struct {
	mu       sync.Mutex
	breakers map[string]*relayBreaker
	settings gobreaker.Settings
}

type BreakerConfig struct {
	HalfOpenRequests uint32        `envconfig:"RELAY_BREAKER_HALF_OPEN_REQUESTS" default:"5"`
	OpenTimeout      time.Duration `envconfig:"RELAY_BREAKER_OPEN_TIMEOUT" default:"60s"`
	MinRequests      uint32        `envconfig:"RELAY_BREAKER_MIN_REQUESTS" default:"3"`
	FailurePercent   float64       `envconfig:"RELAY_BREAKER_FAILURE_PERCENT" default:"60"`
}

func NewBreakerConfig() BreakerConfig {
	var cfg BreakerConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// shouldTrip opens the breaker once MinRequests have been seen in the
// current window and at least FailurePercent of them failed.
func (c BreakerConfig) shouldTrip(counts gobreaker.Counts) bool {
	if counts.Requests < c.MinRequests {
		return false
	}
	return float64(counts.TotalFailures)*100 >= c.FailurePercent*float64(counts.Requests)
}

type BreakerRegistryParams struct {
	fx.In

	Config    BreakerConfig
	Logger    *zap.Logger
	Collector *metrics.RelayCollector `optional:"true"`
}

func NewBreakerRegistry(params BreakerRegistryParams) *BreakerRegistry {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	onChange := func(host string, from, to gobreaker.State) {
		logger.Warn("relay breaker changed state",
			zap.String("host", host),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
		if params.Collector != nil {
			params.Collector.RecordBreakerTransition(context.Background(), host, from, to)
		}
	}

	return &BreakerRegistry{
		breakers: make(map[string]*relayBreaker),
		settings: gobreaker.Settings{
			MaxRequests:   params.Config.HalfOpenRequests,
			Timeout:       params.Config.OpenTimeout,
			ReadyToTrip:   params.Config.shouldTrip,
			OnStateChange: onChange,
		},
	}
}

func (r *BreakerRegistry) For(host string) *relayBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cb, ok := r.breakers[host]; ok {
		return cb
	}

	settings := r.settings
	settings.Name = host
	cb := gobreaker.NewCircuitBreaker[relayResponse](settings)
	r.breakers[host] = cb

	return cb
}
