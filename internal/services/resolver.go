package services

import (
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// CurrencyResolver maps free-form currency identifiers (codes or symbols) to
// canonical codes of one rate snapshot.
type CurrencyResolver struct {
	snapshot *models.RateSnapshot
}

// NewCurrencyResolver creates a resolver bound to snapshot.
func NewCurrencyResolver(snapshot *models.RateSnapshot) *CurrencyResolver {
	return &CurrencyResolver{snapshot: snapshot}
}

// IsSymbol reports whether token is a known currency symbol.
func (r *CurrencyResolver) IsSymbol(token string) bool {
	return r.snapshot.IsSymbol(token)
}

// Resolve returns every code matching token. A symbol may match several codes;
// anything else is treated as a case-insensitive code.
func (r *CurrencyResolver) Resolve(token string) ([]string, error) {
	if r.IsSymbol(token) {
		return r.snapshot.CodesForSymbol(token), nil
	}

	code := strings.ToUpper(strings.TrimSpace(token))
	if code != "" && r.snapshot.HasCode(code) {
		return []string{code}, nil
	}

	return nil, &UnknownCurrencyError{Currency: code}
}

// ResolveInput resolves the source currency, which must match exactly one code.
func (r *CurrencyResolver) ResolveInput(token string) (string, error) {
	codes, err := r.Resolve(token)
	if err != nil {
		return "", err
	}
	if len(codes) > 1 {
		return "", &AmbiguousCurrencyError{Symbol: token, Codes: codes}
	}
	return codes[0], nil
}

// ResolveOutput resolves the target currency. An empty token selects every
// known code in rate table order.
func (r *CurrencyResolver) ResolveOutput(token string) ([]string, error) {
	if token == "" {
		return r.snapshot.Codes(), nil
	}
	return r.Resolve(token)
}
