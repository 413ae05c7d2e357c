// Package currencies holds the catalogue of currency display symbols and names.
package currencies

import (
	_ "embed"
	"encoding/json"
	"strings"
)

// Currency describes one ISO 4217 currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

//go:embed currencies.json
var catalogueJSON []byte

var catalogue = mustLoad(catalogueJSON)

func mustLoad(data []byte) map[string]Currency {
	var list []Currency
	if err := json.Unmarshal(data, &list); err != nil {
		panic("currencies: bad embedded catalogue: " + err.Error())
	}
	out := make(map[string]Currency, len(list))
	for _, c := range list {
		out[c.Code] = c
	}
	return out
}

// Lookup returns the catalogue entry for code. Code matching is case-insensitive.
func Lookup(code string) (Currency, bool) {
	c, ok := catalogue[strings.ToUpper(code)]
	return c, ok
}

// Symbol returns the display symbol of code. It reports false when the code is
// unknown or has no symbol.
func Symbol(code string) (string, bool) {
	c, ok := Lookup(code)
	if !ok || c.Symbol == "" {
		return "", false
	}
	return c.Symbol, true
}

// Name returns the English name of code.
func Name(code string) (string, bool) {
	c, ok := Lookup(code)
	if !ok {
		return "", false
	}
	return c.Name, true
}
