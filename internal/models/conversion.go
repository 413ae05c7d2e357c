package models

// ConversionRequest represents the query of GET /currency_converter
// swagger:model ConversionRequest
type ConversionRequest struct {
	// Amount to convert, may be zero or negative
	// default: 0
	Amount float64 `json:"amount"`

	// Code or symbol of the source currency
	// required: true
	// example: EUR
	InputCurrency string `json:"input_currency" validate:"required,max=16"`

	// Code or symbol of the target currency, empty converts to every known currency
	// example: CZK
	OutputCurrency string `json:"output_currency" validate:"max=16"`
}

// ConversionInput echoes the converted amount and its resolved currency code.
type ConversionInput struct {
	// example: 10
	Amount float64 `json:"amount"`
	// example: EUR
	Currency string `json:"currency"`
}

// ConversionResult represents a successful conversion
// swagger:model ConversionResult
type ConversionResult struct {
	Input ConversionInput `json:"input"`

	// Converted amounts by currency code
	Output *CurrencyValues `json:"output" swaggertype:"object,number"`
}
