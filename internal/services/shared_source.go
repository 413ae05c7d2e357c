package services

//go:generate mockgen -source=shared_source.go -destination=mock_shared_source.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// RatesSnapshotStore keeps the last fetched rate table, with its upstream fetch
// time, where other replicas can read it.
type RatesSnapshotStore interface {
	GetRates(ctx context.Context, base string) (*models.CurrencyValues, time.Time, error)
	SetRates(ctx context.Context, base string, rates *models.CurrencyValues, fetchedAt time.Time) error
}

// SharedRateSource decorates a RateSource with a shared store. A table found in
// the store and younger than maxAge is returned without calling the upstream
// source; a freshly fetched table is written back. Store failures never fail the fetch.
type SharedRateSource struct {
	next   RateSource
	store  RatesSnapshotStore
	maxAge time.Duration
	now    func() time.Time
}

// NewSharedRateSource creates a new decorator. A maxAge of zero or less uses
// DefaultRefreshThreshold.
func NewSharedRateSource(next RateSource, store RatesSnapshotStore, maxAge time.Duration) *SharedRateSource {
	if maxAge <= 0 {
		maxAge = DefaultRefreshThreshold
	}
	return &SharedRateSource{
		next:   next,
		store:  store,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// FetchRates returns the shared table for base or fetches it from the upstream source.
func (s *SharedRateSource) FetchRates(ctx context.Context, base string) (*models.CurrencyValues, error) {
	rates, _, err := s.FetchDatedRates(ctx, base)
	return rates, err
}

// FetchDatedRates is FetchRates that also returns when the table was fetched upstream.
func (s *SharedRateSource) FetchDatedRates(ctx context.Context, base string) (*models.CurrencyValues, time.Time, error) {
	now := s.now()

	rates, fetchedAt, err := s.store.GetRates(ctx, base)
	switch {
	case err != nil:
		logger.Log.Infow("shared rate snapshot miss", "base", base, "error", err)
	case rates.Len() == 0:
		logger.Log.Infow("shared rate snapshot empty", "base", base)
	case fetchedAt.IsZero() || now.Sub(fetchedAt) > s.maxAge:
		logger.Log.Infow("shared rate snapshot too old", "base", base, "fetched_at", fetchedAt)
	default:
		logger.Log.Debugw("exchange rates served from shared snapshot",
			"base", base,
			"currencies", rates.Len(),
			"fetched_at", fetchedAt,
		)
		return rates, fetchedAt, nil
	}

	rates, err = s.next.FetchRates(ctx, base)
	if err != nil {
		return nil, time.Time{}, err
	}

	if err := s.store.SetRates(ctx, base, rates, now); err != nil {
		logger.Log.Errorw("failed to store shared rate snapshot", "base", base, "error", err)
	}
	return rates, now, nil
}
