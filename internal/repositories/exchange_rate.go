package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ErrRatesNotFound is returned when no shared snapshot exists for a base currency.
var ErrRatesNotFound = errors.New("exchange rates not found in cache")

// ExchangeRateCacheRepository shares fetched rate tables between replicas using Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached tables
}

// NewExchangeRateCacheRepository creates a new repository instance with TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// cachedRates is the stored form of a rate table.
type cachedRates struct {
	FetchedAt time.Time              `json:"fetched_at"`
	Rates     *models.CurrencyValues `json:"rates"`
}

func ratesKey(base string) string {
	return fmt.Sprintf("exchange_rates:%s", base)
}

// GetRates fetches the cached rate table for base and the time it was fetched upstream
func (r *ExchangeRateCacheRepository) GetRates(ctx context.Context, base string) (*models.CurrencyValues, time.Time, error) {
	key := ratesKey(base)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, time.Time{}, fmt.Errorf("%w for %s", ErrRatesNotFound, base)
		}
		logger.Log.Errorw("redis get failed", "key", key, "error", err)
		return nil, time.Time{}, err
	}

	cached := cachedRates{Rates: models.NewCurrencyValues()}
	if err := json.Unmarshal(val, &cached); err != nil {
		logger.Log.Errorw("corrupt cached exchange rates", "key", key, "error", err)
		return nil, time.Time{}, fmt.Errorf("decoding cached rates: %w", err)
	}

	logger.Log.Debugw("cached exchange rates loaded",
		"key", key,
		"currencies", cached.Rates.Len(),
		"fetched_at", cached.FetchedAt,
	)
	return cached.Rates, cached.FetchedAt, nil
}

// SetRates caches a rate table and its upstream fetch time in Redis with expiration
func (r *ExchangeRateCacheRepository) SetRates(ctx context.Context, base string, rates *models.CurrencyValues, fetchedAt time.Time) error {
	key := ratesKey(base)

	data, err := json.Marshal(cachedRates{FetchedAt: fetchedAt.UTC(), Rates: rates})
	if err != nil {
		return fmt.Errorf("encoding rates: %w", err)
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("cached exchange rates stored",
		"key", key,
		"currencies", rates.Len(),
		"error", err,
	)

	return err
}
