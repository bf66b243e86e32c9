package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

const (
	cacheKeyPattern = "device_tokens:user:%d"
)

var (
	ErrCacheMiss         = errors.New("cache miss")
	ErrStaleCacheVersion = errors.New("cache version superseded")
)

// CacheProvider caches device tokens per user. Get reports the user's
// version even on a miss; Set only stores when that version is still
// current, so a list read before a Delete is never cached after it.
//
//go:generate mockgen -package mockrepository -destination ./mock/mockcache.go . CacheProvider
type CacheProvider interface {
	Get(userID int64) ([]DeviceToken, uint64, error)
	Set(userID int64, version uint64, tokens []DeviceToken) error
	Delete(userIDs ...int64)
}

var _ CacheProvider = (*Cache)(nil)

type Cache struct {
	engine      *ristretto.Cache[string, []DeviceToken]
	expiredTime time.Duration

	mu       sync.Mutex
	versions map[int64]uint64
}

type CacheParams struct {
	fx.In

	Config CacheConfig
}

func NewCache(lc fx.Lifecycle, params CacheParams) (*Cache, error) {
	c, err := newCache(params.Config)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			c.engine.Close()
			return nil
		},
	})

	return c, nil
}

func newCache(cfg CacheConfig) (*Cache, error) {
	engine, err := ristretto.NewCache(&ristretto.Config[string, []DeviceToken]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Cache{
		engine:      engine,
		expiredTime: cfg.ExpiredTime,
		versions:    make(map[int64]uint64),
	}, nil
}

type CacheConfig struct {
	ExpiredTime time.Duration `envconfig:"CACHE_EXPIRED_TIME" default:"5m"`
	NumCounters int64         `envconfig:"CACHE_NUM_COUNTERS" default:"1000000"`
	MaxCost     int64         `envconfig:"CACHE_MAX_COST" default:"100000"` // entries
	BufferItems int64         `envconfig:"CACHE_BUFFER_ITEMS" default:"64"`
}

func NewCacheConfig() CacheConfig {
	var cfg CacheConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (c *Cache) Get(userID int64) ([]DeviceToken, uint64, error) {
	cacheKey := fmt.Sprintf(cacheKeyPattern, userID)

	c.mu.Lock()
	version := c.versions[userID]
	c.mu.Unlock()

	value, found := c.engine.Get(cacheKey)
	if !found {
		return nil, version, fmt.Errorf("cache key: '%s': %w", cacheKey, ErrCacheMiss)
	}
	return value, version, nil
}

// Set stores tokens for userID if no Delete happened since Get returned
// version. Writes are buffered by ristretto, so a Get immediately after Set
// may still miss.
func (c *Cache) Set(userID int64, version uint64, tokens []DeviceToken) error {
	cacheKey := fmt.Sprintf(cacheKeyPattern, userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.versions[userID] != version {
		return fmt.Errorf("cache key: '%s': %w", cacheKey, ErrStaleCacheVersion)
	}
	if !c.engine.SetWithTTL(cacheKey, tokens, 1, c.expiredTime) {
		return fmt.Errorf("cache key: '%s' rejected", cacheKey)
	}
	return nil
}

// Delete drops the cached lists and bumps each user's version. Sets and
// deletes are queued under the same lock, so ristretto applies them in
// call order.
func (c *Cache) Delete(userIDs ...int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, userID := range userIDs {
		c.versions[userID]++
		c.engine.Del(fmt.Sprintf(cacheKeyPattern, userID))
	}
}
