package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// USD is the currency every fetched rate table is expressed against by default.
const USD = "USD"

// CurrencyValues is an ordered mapping from currency code to a float value.
// It is used both for rate tables and for conversion outputs. Codes keep the
// order in which they were first set, which for rate tables is the order the
// rate source returned them in.
type CurrencyValues struct {
	codes  []string
	values map[string]float64
}

// NewCurrencyValues returns an empty mapping.
func NewCurrencyValues() *CurrencyValues {
	return &CurrencyValues{values: map[string]float64{}}
}

// Set stores value for code. A new code is appended, an existing one keeps its position.
func (c *CurrencyValues) Set(code string, value float64) {
	if c.values == nil {
		c.values = map[string]float64{}
	}
	if _, ok := c.values[code]; !ok {
		c.codes = append(c.codes, code)
	}
	c.values[code] = value
}

// Get returns the value stored for code.
func (c *CurrencyValues) Get(code string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.values[code]
	return v, ok
}

// Codes returns a copy of the codes in insertion order.
func (c *CurrencyValues) Codes() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Len returns the number of codes.
func (c *CurrencyValues) Len() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}

// Clone returns a deep copy.
func (c *CurrencyValues) Clone() *CurrencyValues {
	out := NewCurrencyValues()
	if c == nil {
		return out
	}
	for _, code := range c.codes {
		out.Set(code, c.values[code])
	}
	return out
}

// MarshalJSON writes the mapping as a JSON object keeping insertion order.
func (c *CurrencyValues) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if c != nil {
		for i, code := range c.codes {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(code)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(c.values[code])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of numbers keeping the key order of the document.
func (c *CurrencyValues) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("currency values: expected object, got %v", tok)
	}

	out := NewCurrencyValues()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		code, ok := tok.(string)
		if !ok {
			return fmt.Errorf("currency values: unexpected key %v", tok)
		}

		var num json.Number
		if err := dec.Decode(&num); err != nil {
			return fmt.Errorf("currency values: value for %s: %w", code, err)
		}
		f, err := num.Float64()
		if err != nil {
			return fmt.Errorf("currency values: value for %s: %w", code, err)
		}
		out.Set(code, f)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = *out
	return nil
}

// RatesResponse represents the current rate table served by GET /exchange/rates
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency of the table
	// example: USD
	Base string `json:"base"`

	// Time the table was fetched from the rate source
	FetchedAt time.Time `json:"fetched_at"`

	// Exchange rates, one unit of base expressed in each currency
	Rates *CurrencyValues `json:"rates" swaggertype:"object,number"`

	// Display symbols by currency code
	Symbols map[string]string `json:"symbols"`
}

// ErrorResponse represents an error returned by any endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: unknown currency XYZ123
	Error string `json:"error"`
}
