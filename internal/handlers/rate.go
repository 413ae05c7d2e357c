package handlers

//go:generate mockgen -source=rate.go -destination=mock_rate.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// RatesReader returns the rate snapshot currently used for conversions.
type RatesReader interface {
	Rates(ctx context.Context) (*models.RateSnapshot, error)
}

// NewGetRatesHandler handles fetching current exchange rates
// @Summary Get exchange rates
// @Description Returns the cached rate table against the base currency together with the currency symbols
// @Tags exchange
// @Produce json
// @Success 200 {object} models.RatesResponse
// @Failure 502 {object} models.ErrorResponse "Exchange rates unavailable"
// @Failure 500 {object} models.ErrorResponse
// @Router /exchange/rates [get]
func NewGetRatesHandler(svc RatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Rates(r.Context())
		if err != nil {
			if errors.Is(err, services.ErrRatesUnavailable) {
				writeError(w, http.StatusBadGateway, "exchange rates unavailable")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to retrieve exchange rates")
			return
		}

		writeJSON(w, http.StatusOK, models.RatesResponse{
			Base:      snap.Base,
			FetchedAt: snap.FetchedAt,
			Rates:     snap.Rates,
			Symbols:   snap.Symbols,
		})
	}
}

// RegisterGetRatesHandler registers routes for fetching exchange rates
func RegisterGetRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/exchange/rates", h)
}
