package handlers

//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report query parameter names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Converter converts an amount between currencies.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error)
}

// NewConvertHandler returns an HTTP handler converting an amount to one or every known currency.
// @Summary Convert currency
// @Description Converts amount from input_currency to output_currency. Currencies are given by code (EUR) or symbol (€). Without output_currency the amount is converted to every known currency.
// @Tags converter
// @Produce json
// @Param amount query number false "Amount to convert" default(0)
// @Param input_currency query string true "Input currency code or symbol"
// @Param output_currency query string false "Output currency code or symbol"
// @Success 200 {object} models.ConversionResult "Converted amounts"
// @Failure 400 {object} models.ErrorResponse "Unknown or ambiguous currency, invalid parameters"
// @Failure 502 {object} models.ErrorResponse "Exchange rates unavailable"
// @Router /currency_converter [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseConversionRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := svc.Convert(r.Context(), req)
		if err != nil {
			writeError(w, conversionErrorStatus(err), conversionErrorMessage(err))
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RegisterConvertHandler registers the conversion route
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/currency_converter", h)
}

func parseConversionRequest(r *http.Request) (models.ConversionRequest, error) {
	query := r.URL.Query()

	req := models.ConversionRequest{
		InputCurrency:  strings.TrimSpace(query.Get("input_currency")),
		OutputCurrency: strings.TrimSpace(query.Get("output_currency")),
	}

	if raw := strings.TrimSpace(query.Get("amount")); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return req, fmt.Errorf("invalid amount %q", raw)
		}
		req.Amount = amount
	}

	if err := validate.Struct(req); err != nil {
		return req, validationError(err)
	}

	return req, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

func conversionErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUnknownCurrency),
		errors.Is(err, services.ErrAmbiguousInputCurrency),
		errors.Is(err, services.ErrAmountOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRatesUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func conversionErrorMessage(err error) string {
	var unknown *services.UnknownCurrencyError
	if errors.As(err, &unknown) {
		return unknown.Error()
	}
	var ambiguous *services.AmbiguousCurrencyError
	if errors.As(err, &ambiguous) {
		return ambiguous.Error()
	}
	if errors.Is(err, services.ErrAmountOutOfRange) {
		return err.Error()
	}
	if errors.Is(err, services.ErrRatesUnavailable) {
		return "exchange rates unavailable"
	}
	return "internal server error"
}

// writeJSON encodes v before writing the status line, so an unencodable value
// becomes a 500 instead of a success status with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
		buf.Reset()
		buf.WriteString(`{"error":"internal server error"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
