package facades

import (
	"context"
	"fmt"
	"sort"

	pb "github.com/sbilibin2017/proto-exchange/exchange"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ExchangeRatesGRPCFacade reads rate tables from the gw-exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// FetchRates fetches all exchange rates and rebases them onto base.
// The exchanger returns an unordered map, so codes are sorted alphabetically.
func (f *ExchangeRatesGRPCFacade) FetchRates(ctx context.Context, base string) (*models.CurrencyValues, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, fmt.Errorf("grpc get exchange rates: %w", err)
	}

	baseRate, ok := resp.Rates[base]
	if !ok || baseRate <= 0 {
		return nil, fmt.Errorf("grpc exchange rates: no rate for base currency %s", base)
	}

	codes := make([]string, 0, len(resp.Rates))
	for code := range resp.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rates := models.NewCurrencyValues()
	for _, code := range codes {
		rate := resp.Rates[code]
		if rate <= 0 {
			return nil, fmt.Errorf("grpc exchange rates: bad rate value %v for %s", rate, code)
		}
		if code == base {
			continue
		}
		rates.Set(code, float64(rate)/float64(baseRate))
	}

	return rates, nil
}
