package services

//go:generate mockgen -source=converter.go -destination=mock_converter.go -package=services

import (
	"context"
	"fmt"
	"math"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Convert converts amount of input into every output code through the base
// currency of rates. No rounding is applied, so converting a currency into
// itself may differ from amount in the last bits. A result that is not a finite
// number fails with ErrAmountOutOfRange.
func Convert(amount float64, input string, outputs []string, rates *models.CurrencyValues) (*models.CurrencyValues, error) {
	inRate, ok := rates.Get(input)
	if !ok {
		return nil, &UnknownCurrencyError{Currency: input}
	}

	result := models.NewCurrencyValues()
	for _, out := range outputs {
		result.Set(out, 0)
	}

	for _, out := range outputs {
		outRate, ok := rates.Get(out)
		if !ok {
			return nil, &UnknownCurrencyError{Currency: out}
		}
		converted := amount * outRate / inRate
		if !isFinite(converted) {
			return nil, fmt.Errorf("%w: %v %s does not convert to a finite amount of %s",
				ErrAmountOutOfRange, amount, input, out)
		}
		result.Set(out, converted)
	}

	return result, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RatesSnapshotter returns the rate snapshot conversions are computed against.
type RatesSnapshotter interface {
	Snapshot(ctx context.Context) (*models.RateSnapshot, error)
}

// ConverterService resolves currency identifiers and converts amounts.
type ConverterService struct {
	rates RatesSnapshotter
}

// NewConverterService creates a new service instance
func NewConverterService(rates RatesSnapshotter) *ConverterService {
	return &ConverterService{rates: rates}
}

// Convert runs one conversion request against the current rate snapshot.
func (svc *ConverterService) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error) {
	result, err := svc.convert(ctx, req)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(metrics.ResultError).Inc()
		logger.Log.Infow("conversion failed",
			"amount", req.Amount,
			"input_currency", req.InputCurrency,
			"output_currency", req.OutputCurrency,
			"error", err,
		)
		return nil, err
	}
	metrics.ConversionsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return result, nil
}

func (svc *ConverterService) convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error) {
	if !isFinite(req.Amount) {
		return nil, fmt.Errorf("%w: %v", ErrAmountOutOfRange, req.Amount)
	}

	snap, err := svc.rates.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	resolver := NewCurrencyResolver(snap)

	input, err := resolver.ResolveInput(req.InputCurrency)
	if err != nil {
		return nil, err
	}
	outputs, err := resolver.ResolveOutput(req.OutputCurrency)
	if err != nil {
		return nil, err
	}

	logger.Log.Debugw("converting",
		"amount", req.Amount,
		"input", input,
		"outputs", outputs,
	)

	amounts, err := Convert(req.Amount, input, outputs, snap.Rates)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", input, err)
	}

	return &models.ConversionResult{
		Input: models.ConversionInput{
			Amount:   req.Amount,
			Currency: input,
		},
		Output: amounts,
	}, nil
}

// Rates returns the current rate snapshot, refreshing it first when stale.
func (svc *ConverterService) Rates(ctx context.Context) (*models.RateSnapshot, error) {
	return svc.rates.Snapshot(ctx)
}
