package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// DefaultRatesURL is a Frankfurter (ECB reference rates) compatible API.
const DefaultRatesURL = "https://api.frankfurter.app"

// HTTPRatesFacade reads rate tables from a Frankfurter compatible REST API.
type HTTPRatesFacade struct {
	// url base API url
	url string

	// client for HTTP requests
	client *http.Client
}

// NewHTTPRatesFacade creates a new facade. A zero timeout leaves the client without one.
func NewHTTPRatesFacade(baseURL string, timeout time.Duration) *HTTPRatesFacade {
	if baseURL == "" {
		baseURL = DefaultRatesURL
	}
	return &HTTPRatesFacade{
		url: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRates loads the latest rates of every currency against base.
// Currencies keep the order of the response document.
func (f *HTTPRatesFacade) FetchRates(ctx context.Context, base string) (*models.CurrencyValues, error) {
	type response struct {
		Base  string                `json:"base"`
		Date  string                `json:"date"`
		Rates models.CurrencyValues `json:"rates"`
	}

	endpoint := fmt.Sprintf("%s/latest?from=%s", f.url, url.QueryEscape(base))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	httpResponse, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResponse.Body, 512))
		return nil, fmt.Errorf("rates api returned status %d: %s", httpResponse.StatusCode, strings.TrimSpace(string(body)))
	}

	var resp response
	if err := json.NewDecoder(httpResponse.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	if resp.Base != "" && !strings.EqualFold(resp.Base, base) {
		return nil, fmt.Errorf("rates api answered for base %s, want %s", resp.Base, base)
	}

	for _, code := range resp.Rates.Codes() {
		if rate, _ := resp.Rates.Get(code); rate <= 0 {
			return nil, fmt.Errorf("bad rate value %v for %s", rate, code)
		}
	}

	return &resp.Rates, nil
}
