package services

import (
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/currencies"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ecbRates mirrors the shape of a Frankfurter response for USD, without USD itself.
var ecbRates = []struct {
	code string
	rate float64
}{
	{"AUD", 1.5312}, {"BGN", 1.7921}, {"BRL", 5.4471}, {"CAD", 1.3796},
	{"CHF", 0.8853}, {"CNY", 7.2512}, {"CZK", 23.104}, {"DKK", 6.8345},
	{"EUR", 0.9163}, {"GBP", 0.7771}, {"HKD", 7.8123}, {"HUF", 362.57},
	{"IDR", 15741.0}, {"ILS", 3.7124}, {"INR", 83.412}, {"ISK", 137.9},
	{"JPY", 151.62}, {"KRW", 1364.2}, {"MXN", 16.921}, {"MYR", 4.7215},
	{"NOK", 10.786}, {"NZD", 1.6623}, {"PHP", 56.271}, {"PLN", 3.9512},
	{"RON", 4.5602}, {"SEK", 10.512}, {"SGD", 1.3467}, {"THB", 36.402},
	{"TRY", 32.307}, {"ZAR", 18.811},
}

func newECBRates() *models.CurrencyValues {
	rates := models.NewCurrencyValues()
	for _, r := range ecbRates {
		rates.Set(r.code, r.rate)
	}
	return rates
}

func newECBSnapshot() *models.RateSnapshot {
	rates := newECBRates()
	rates.Set(models.USD, 1.0)
	return models.NewRateSnapshot(models.USD, rates, currencies.Symbol, time.Now())
}

// newSnapshot builds a snapshot from code/rate pairs in the given order.
func newSnapshot(pairs ...interface{}) *models.RateSnapshot {
	rates := models.NewCurrencyValues()
	for i := 0; i+1 < len(pairs); i += 2 {
		rates.Set(pairs[i].(string), pairs[i+1].(float64))
	}
	return models.NewRateSnapshot(models.USD, rates, currencies.Symbol, time.Now())
}

