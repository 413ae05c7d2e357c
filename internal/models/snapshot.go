package models

import (
	"strings"
	"time"
)

// DollarSymbol is the symbol every dollar-like currency is normalised to.
const DollarSymbol = "$"

// SymbolLookup returns the display symbol of a currency code.
type SymbolLookup func(code string) (string, bool)

// RateSnapshot is one fetched rate table together with the symbol tables derived from it.
// A snapshot is never modified after NewRateSnapshot returns.
type RateSnapshot struct {
	Base      string
	Rates     *CurrencyValues
	Symbols   map[string]string
	FetchedAt time.Time

	bySymbol map[string][]string
}

// NewRateSnapshot builds the symbol table and its reverse index from the codes in rates.
// Codes without a known symbol stay resolvable by code only.
func NewRateSnapshot(base string, rates *CurrencyValues, lookup SymbolLookup, fetchedAt time.Time) *RateSnapshot {
	s := &RateSnapshot{
		Base:      base,
		Rates:     rates,
		Symbols:   make(map[string]string, rates.Len()),
		FetchedAt: fetchedAt,
		bySymbol:  map[string][]string{},
	}

	for _, code := range rates.Codes() {
		if lookup == nil {
			break
		}
		symbol, ok := lookup(code)
		if !ok || symbol == "" {
			continue
		}
		if strings.Contains(symbol, DollarSymbol) {
			symbol = DollarSymbol
		}
		s.Symbols[code] = symbol
		s.bySymbol[symbol] = append(s.bySymbol[symbol], code)
	}

	return s
}

// Codes returns every known currency code in rate table order.
func (s *RateSnapshot) Codes() []string {
	return s.Rates.Codes()
}

// HasCode reports whether code is present in the rate table.
func (s *RateSnapshot) HasCode(code string) bool {
	_, ok := s.Rates.Get(code)
	return ok
}

// CodesForSymbol returns the codes sharing symbol, in rate table order.
func (s *RateSnapshot) CodesForSymbol(symbol string) []string {
	codes := s.bySymbol[symbol]
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// IsSymbol reports whether token is the symbol of at least one known code.
func (s *RateSnapshot) IsSymbol(token string) bool {
	_, ok := s.bySymbol[token]
	return ok
}
