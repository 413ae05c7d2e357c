package facades

import (
	"context"
	"errors"
	"testing"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// --- Fake gRPC client ---
type fakeExchangeClient struct {
	rates map[string]float32
	err   error
}

func (f *fakeExchangeClient) GetExchangeRates(ctx context.Context, _ *pb.Empty, opts ...grpc.CallOption) (*pb.ExchangeRatesResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRatesResponse{Rates: f.rates}, nil
}

func (f *fakeExchangeClient) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error) {
	return nil, errors.New("not used")
}

func TestExchangeRatesGRPCFacade_FetchRates(t *testing.T) {
	client := &fakeExchangeClient{
		rates: map[string]float32{
			"USD": 1.0,
			"RUB": 90.0,
			"EUR": 0.5,
		},
	}
	facade := NewExchangeRatesGRPCFacade(client)

	rates, err := facade.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "RUB"}, rates.Codes())

	eur, _ := rates.Get("EUR")
	assert.InDelta(t, 0.5, eur, 1e-6)
}

func TestExchangeRatesGRPCFacade_Rebase(t *testing.T) {
	client := &fakeExchangeClient{
		rates: map[string]float32{
			"USD": 1.0,
			"EUR": 0.5,
			"CZK": 22.0,
		},
	}
	facade := NewExchangeRatesGRPCFacade(client)

	rates, err := facade.FetchRates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, []string{"CZK", "USD"}, rates.Codes())

	usd, _ := rates.Get("USD")
	czk, _ := rates.Get("CZK")
	assert.InDelta(t, 2.0, usd, 1e-6)
	assert.InDelta(t, 44.0, czk, 1e-6)
}

func TestExchangeRatesGRPCFacade_Errors(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeExchangeClient
	}{
		{"grpc error", &fakeExchangeClient{err: errors.New("grpc error")}},
		{"missing base", &fakeExchangeClient{rates: map[string]float32{"EUR": 0.9}}},
		{"bad rate", &fakeExchangeClient{rates: map[string]float32{"USD": 1, "EUR": 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, err := NewExchangeRatesGRPCFacade(tt.client).FetchRates(context.Background(), "USD")
			assert.Error(t, err)
			assert.Nil(t, rates)
		})
	}
}
