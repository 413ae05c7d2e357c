package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func exampleRates() *models.CurrencyValues {
	rates := models.NewCurrencyValues()
	rates.Set("CZK", 22.0)
	rates.Set("EUR", 0.8)
	rates.Set("USD", 1.0)
	return rates
}

func TestConvert(t *testing.T) {
	rates := exampleRates()

	type args struct {
		amount  float64
		input   string
		outputs []string
	}
	tests := []struct {
		name    string
		args    args
		want    map[string]float64
		wantErr bool
	}{
		{
			name: "czk -> usd",
			args: args{22.0, "CZK", []string{"USD"}},
			want: map[string]float64{"USD": 1.0},
		},
		{
			name: "usd -> czk",
			args: args{100, "USD", []string{"CZK"}},
			want: map[string]float64{"CZK": 2200.0},
		},
		{
			name: "zero amount",
			args: args{0, "USD", []string{"CZK", "EUR"}},
			want: map[string]float64{"CZK": 0, "EUR": 0},
		},
		{
			name: "negative amount",
			args: args{-10, "USD", []string{"EUR"}},
			want: map[string]float64{"EUR": -8.0},
		},
		{
			name:    "unknown input",
			args:    args{1, "XYZ", []string{"EUR"}},
			wantErr: true,
		},
		{
			name:    "unknown output",
			args:    args{1, "EUR", []string{"XYZ"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.args.amount, tt.args.input, tt.args.outputs, rates)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownCurrency))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.args.outputs, got.Codes())
			for code, want := range tt.want {
				v, ok := got.Get(code)
				assert.True(t, ok)
				assert.InDelta(t, want, v, 1e-9, code)
			}
		})
	}
}

func TestConvert_Linearity(t *testing.T) {
	rates := newECBSnapshot().Rates

	for _, pair := range [][2]string{{"USD", "CZK"}, {"CZK", "EUR"}, {"EUR", "USD"}, {"CNY", "USD"}, {"GBP", "CZK"}} {
		for _, amount := range []float64{1.45, 10.99, 100.11, 42, 18.45} {
			once, err := Convert(amount, pair[0], []string{pair[1]}, rates)
			require.NoError(t, err)
			tenfold, err := Convert(10*amount, pair[0], []string{pair[1]}, rates)
			require.NoError(t, err)

			a, _ := once.Get(pair[1])
			b, _ := tenfold.Get(pair[1])
			assert.InDelta(t, a*10, b, 1e-6, "%v %s -> %s", amount, pair[0], pair[1])
		}
	}
}

func TestConvert_Transitivity(t *testing.T) {
	rates := newECBSnapshot().Rates

	for _, path := range [][3]string{{"USD", "CZK", "EUR"}, {"CNY", "USD", "EUR"}, {"GBP", "CZK", "EUR"}} {
		amount := 20.0

		toMid, err := Convert(amount, path[0], []string{path[1]}, rates)
		require.NoError(t, err)
		mid, _ := toMid.Get(path[1])

		viaMid, err := Convert(mid, path[1], []string{path[2]}, rates)
		require.NoError(t, err)
		direct, err := Convert(amount, path[0], []string{path[2]}, rates)
		require.NoError(t, err)

		a, _ := viaMid.Get(path[2])
		b, _ := direct.Get(path[2])
		assert.InDelta(t, b, a, 1e-6, "%v", path)
	}
}

func TestConvert_Identity(t *testing.T) {
	rates := newECBSnapshot().Rates

	for _, code := range rates.Codes() {
		got, err := Convert(123.456, code, []string{code}, rates)
		require.NoError(t, err)
		v, _ := got.Get(code)
		assert.InDelta(t, 123.456, v, 1e-9, code)
	}
}

func TestConverterService_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	snap := newECBSnapshot()

	rates := NewMockRatesSnapshotter(ctrl)
	rates.EXPECT().Snapshot(gomock.Any()).AnyTimes().Return(snap, nil)

	svc := NewConverterService(rates)

	t.Run("symbol input equals code input", func(t *testing.T) {
		bySymbol, err := svc.Convert(ctx, models.ConversionRequest{Amount: 10, InputCurrency: "€", OutputCurrency: "CZK"})
		require.NoError(t, err)
		byCode, err := svc.Convert(ctx, models.ConversionRequest{Amount: 10, InputCurrency: "EUR", OutputCurrency: "CZK"})
		require.NoError(t, err)

		assert.Equal(t, byCode, bySymbol)
		assert.Equal(t, models.ConversionInput{Amount: 10, Currency: "EUR"}, bySymbol.Input)
	})

	t.Run("omitted output converts to every code", func(t *testing.T) {
		res, err := svc.Convert(ctx, models.ConversionRequest{Amount: 22, InputCurrency: "CZK"})
		require.NoError(t, err)
		assert.Equal(t, snap.Rates.Len(), res.Output.Len())
		assert.Equal(t, snap.Codes(), res.Output.Codes())
	})

	t.Run("ambiguous input", func(t *testing.T) {
		_, err := svc.Convert(ctx, models.ConversionRequest{Amount: 1, InputCurrency: "$", OutputCurrency: "EUR"})
		assert.True(t, errors.Is(err, ErrAmbiguousInputCurrency))
	})

	t.Run("unknown input", func(t *testing.T) {
		_, err := svc.Convert(ctx, models.ConversionRequest{Amount: 1, InputCurrency: "XYZ123", OutputCurrency: "EUR"})
		assert.True(t, errors.Is(err, ErrUnknownCurrency))
	})

	t.Run("unknown output", func(t *testing.T) {
		_, err := svc.Convert(ctx, models.ConversionRequest{Amount: 1, InputCurrency: "EUR", OutputCurrency: "XYZ123"})
		assert.True(t, errors.Is(err, ErrUnknownCurrency))
	})

	t.Run("ambiguous output symbol converts to every match", func(t *testing.T) {
		res, err := svc.Convert(ctx, models.ConversionRequest{Amount: 1, InputCurrency: "EUR", OutputCurrency: "kr"})
		require.NoError(t, err)
		assert.Equal(t, []string{"DKK", "ISK", "NOK", "SEK"}, res.Output.Codes())
	})
}

func TestConvert_NonFiniteResult(t *testing.T) {
	rates := exampleRates()

	_, err := Convert(1e308, "EUR", []string{"CZK"}, rates)
	assert.True(t, errors.Is(err, ErrAmountOutOfRange))

	_, err = Convert(-1e308, "EUR", []string{"CZK"}, rates)
	assert.True(t, errors.Is(err, ErrAmountOutOfRange))

	res, err := Convert(1e308, "CZK", []string{"EUR"}, rates)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
}

func TestConverterService_NonFiniteAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// rejected before the snapshot is read
	svc := NewConverterService(NewMockRatesSnapshotter(ctrl))

	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		res, err := svc.Convert(context.Background(), models.ConversionRequest{Amount: amount, InputCurrency: "EUR"})
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, ErrAmountOutOfRange))
	}
}

func TestConverterService_SnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := NewMockRatesSnapshotter(ctrl)
	rates.EXPECT().Snapshot(gomock.Any()).Return(nil, ErrRatesUnavailable)

	svc := NewConverterService(rates)
	res, err := svc.Convert(context.Background(), models.ConversionRequest{Amount: 1, InputCurrency: "EUR"})

	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrRatesUnavailable))
}

func TestConverterService_Rates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snap := newSnapshot("CZK", 22.0, "USD", 1.0)
	rates := NewMockRatesSnapshotter(ctrl)
	rates.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)

	got, err := NewConverterService(rates).Rates(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, got)
}
