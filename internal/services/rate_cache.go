package services

//go:generate mockgen -source=rate_cache.go -destination=mock_rate_cache.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/gw-currency-converter/internal/currencies"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const (
	// DefaultRefreshThreshold is the maximum age of a cached rate table.
	DefaultRefreshThreshold = 6 * time.Hour

	// DefaultFetchTimeout bounds one shared upstream fetch.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultRetryCooldown is how long a stale table is served after a failed
	// refresh before the upstream source is tried again.
	DefaultRetryCooldown = time.Minute
)

const refreshKey = "refresh"

// RateSource fetches the rate table of all currencies against base.
// The returned table need not contain base itself.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (*models.CurrencyValues, error)
}

// DatedRateSource is a RateSource that also reports when the returned table was
// fetched upstream, for sources that may serve an older copy.
type DatedRateSource interface {
	RateSource
	FetchDatedRates(ctx context.Context, base string) (*models.CurrencyValues, time.Time, error)
}

// RateCacheOption configures a RateCache.
type RateCacheOption func(*RateCache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RateCacheOption {
	return func(c *RateCache) {
		c.now = now
	}
}

// WithSymbolLookup replaces the embedded currency catalogue.
func WithSymbolLookup(lookup models.SymbolLookup) RateCacheOption {
	return func(c *RateCache) {
		c.symbols = lookup
	}
}

// WithFetchTimeout bounds each upstream fetch.
func WithFetchTimeout(d time.Duration) RateCacheOption {
	return func(c *RateCache) {
		c.fetchTimeout = d
	}
}

// WithRetryCooldown sets how long a failed refresh is not retried while a stale
// snapshot can be served. Zero retries on every stale request.
func WithRetryCooldown(d time.Duration) RateCacheOption {
	return func(c *RateCache) {
		c.retryCooldown = d
	}
}

// RateCache keeps the last fetched rate snapshot and refetches it lazily once it
// is older than the threshold. Readers always see a complete snapshot; concurrent
// refreshes share one upstream call.
type RateCache struct {
	source    RateSource
	base      string
	threshold time.Duration
	symbols   models.SymbolLookup
	now       func() time.Time

	fetchTimeout  time.Duration
	retryCooldown time.Duration

	current     atomic.Pointer[models.RateSnapshot]
	lastFailure atomic.Int64 // unix nanos of the last failed refresh, 0 after a success
	group       singleflight.Group
}

// NewRateCache creates an empty cache. Call Refresh to seed it.
func NewRateCache(source RateSource, base string, threshold time.Duration, opts ...RateCacheOption) *RateCache {
	if base == "" {
		base = models.USD
	}
	if threshold <= 0 {
		threshold = DefaultRefreshThreshold
	}
	c := &RateCache{
		source:    source,
		base:      base,
		threshold: threshold,
		symbols:   currencies.Symbol,
		now:       time.Now,

		fetchTimeout:  DefaultFetchTimeout,
		retryCooldown: DefaultRetryCooldown,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShouldRefresh reports whether the cached snapshot is missing or older than the threshold.
func (c *RateCache) ShouldRefresh() bool {
	snap := c.current.Load()
	if snap == nil {
		return true
	}
	return c.now().Sub(snap.FetchedAt) > c.threshold
}

// Refresh fetches a new rate table and replaces the snapshot.
// On error the previous snapshot stays in place.
func (c *RateCache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do(refreshKey, func() (interface{}, error) {
		return nil, c.refresh(ctx)
	})
	return err
}

// Snapshot returns the current snapshot, refreshing it first when stale.
// When the refresh fails and an older snapshot exists, the older snapshot is
// served and the failure only logged. After a failure the stale snapshot is
// served without refetching until the retry cooldown has passed.
func (c *RateCache) Snapshot(ctx context.Context) (*models.RateSnapshot, error) {
	if !c.ShouldRefresh() {
		return c.current.Load(), nil
	}

	if snap := c.current.Load(); snap != nil && c.coolingDown() {
		metrics.RateRefreshTotal.WithLabelValues(metrics.ResultStale).Inc()
		logger.Log.Debugw("serving stale exchange rates until retry",
			"base", snap.Base,
			"fetched_at", snap.FetchedAt,
		)
		return snap, nil
	}

	_, err, _ := c.group.Do(refreshKey, func() (interface{}, error) {
		// another caller may have refreshed between the check and this call
		if !c.ShouldRefresh() {
			return nil, nil
		}
		return nil, c.refresh(ctx)
	})

	snap := c.current.Load()
	if err != nil {
		if snap == nil {
			return nil, err
		}
		metrics.RateRefreshTotal.WithLabelValues(metrics.ResultStale).Inc()
		logger.Log.Warnw("serving stale exchange rates",
			"base", snap.Base,
			"fetched_at", snap.FetchedAt,
			"error", err,
		)
	}
	return snap, nil
}

func (c *RateCache) coolingDown() bool {
	last := c.lastFailure.Load()
	if last == 0 || c.retryCooldown <= 0 {
		return false
	}
	return c.now().Sub(time.Unix(0, last)) < c.retryCooldown
}

// fetch calls the source and returns the table with the time it was fetched upstream.
func (c *RateCache) fetch(ctx context.Context) (*models.CurrencyValues, time.Time, error) {
	now := c.now()

	dated, ok := c.source.(DatedRateSource)
	if !ok {
		rates, err := c.source.FetchRates(ctx, c.base)
		return rates, now, err
	}

	rates, fetchedAt, err := dated.FetchDatedRates(ctx, c.base)
	if err != nil || fetchedAt.IsZero() || fetchedAt.After(now) {
		return rates, now, err
	}
	return rates, fetchedAt, nil
}

// refresh runs detached from the caller's cancellation: the result is shared by
// every request waiting on it.
func (c *RateCache) refresh(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	rates, fetchedAt, err := c.fetch(ctx)
	if err == nil && rates.Len() == 0 {
		err = errors.New("empty rate table")
	}
	if err != nil {
		c.lastFailure.Store(c.now().UnixNano())
		metrics.RateRefreshTotal.WithLabelValues(metrics.ResultError).Inc()
		logger.Log.Errorw("failed to refresh exchange rates", "base", c.base, "error", err)
		return fmt.Errorf("%w: %w", ErrRatesUnavailable, err)
	}

	table := rates.Clone()
	table.Set(c.base, 1.0)

	snap := models.NewRateSnapshot(c.base, table, c.symbols, fetchedAt)
	c.current.Store(snap)
	c.lastFailure.Store(0)

	metrics.RateRefreshTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.RateTableSize.Set(float64(table.Len()))
	logger.Log.Infow("exchange rates refreshed",
		"base", c.base,
		"currencies", table.Len(),
		"fetched_at", snap.FetchedAt,
	)
	return nil
}
