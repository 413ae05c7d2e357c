package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCurrency        = errors.New("unknown currency")
	ErrAmbiguousInputCurrency = errors.New("input currency is not unique")
	ErrRatesUnavailable       = errors.New("exchange rates unavailable")
	ErrAmountOutOfRange       = errors.New("amount out of range")
)

// UnknownCurrencyError is returned when an identifier is neither a known code nor a known symbol.
type UnknownCurrencyError struct {
	Currency string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %s", e.Currency)
}

func (e *UnknownCurrencyError) Is(target error) bool {
	return target == ErrUnknownCurrency
}

// AmbiguousCurrencyError is returned when an input symbol is shared by several codes.
type AmbiguousCurrencyError struct {
	Symbol string
	Codes  []string
}

func (e *AmbiguousCurrencyError) Error() string {
	return fmt.Sprintf(
		"input currency symbol %s is not unique (%s), use a currency code (USD, EUR, CZK etc.) instead",
		e.Symbol, strings.Join(e.Codes, ", "),
	)
}

func (e *AmbiguousCurrencyError) Is(target error) bool {
	return target == ErrAmbiguousInputCurrency
}
