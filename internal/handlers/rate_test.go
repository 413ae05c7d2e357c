package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

func TestGetRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockRatesReader(ctrl)

	router := chi.NewRouter()
	handlers.RegisterGetRatesHandler(router, handlers.NewGetRatesHandler(mockReader))

	rates := models.NewCurrencyValues()
	rates.Set("EUR", 0.8)
	rates.Set("CZK", 22)
	rates.Set("USD", 1)
	symbols := map[string]string{"EUR": "€", "CZK": "Kč", "USD": "$"}
	lookup := func(code string) (string, bool) {
		s, ok := symbols[code]
		return s, ok
	}
	fetchedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := models.NewRateSnapshot(models.USD, rates, lookup, fetchedAt)

	tests := []struct {
		name      string
		mockSetup func()
		wantCode  int
		wantBody  interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				mockReader.EXPECT().Rates(gomock.Any()).Return(snap, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"base":       "USD",
				"fetched_at": "2024-03-01T12:00:00Z",
				"rates": map[string]interface{}{
					"EUR": 0.8,
					"CZK": float64(22),
					"USD": float64(1),
				},
				"symbols": map[string]interface{}{
					"EUR": "€",
					"CZK": "Kč",
					"USD": "$",
				},
			},
		},
		{
			name: "rates unavailable",
			mockSetup: func() {
				mockReader.EXPECT().
					Rates(gomock.Any()).
					Return(nil, fmt.Errorf("%w: %w", services.ErrRatesUnavailable, errors.New("timeout")))
			},
			wantCode: http.StatusBadGateway,
			wantBody: map[string]interface{}{"error": "exchange rates unavailable"},
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockReader.EXPECT().Rates(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]interface{}{"error": "failed to retrieve exchange rates"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/exchange/rates", nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, tt.wantCode, rr.Code)

			var got interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
