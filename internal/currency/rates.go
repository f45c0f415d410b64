// Package currency provides a fail-open client for a remote
// latest-exchange-rates service. Plan prices are stored in a single base
// currency; the client converts them on the way out and never surfaces a
// lookup failure to the caller.
package currency

import (
	"encoding/json" // Response decoding
	"fmt"           // Error formatting
	"net/http"      // Outbound HTTP
	"strings"       // Case-insensitive currency comparison
	"time"          // Client timeout

	"github.com/sirupsen/logrus" // Logging library
)

// Client fetches conversion rates from a latest-rates endpoint
type Client struct {
	baseURL    string       // Rate service base URL
	base       string       // Base currency code (e.g. USD)
	httpClient *http.Client // Owned HTTP client with timeout
}

// NewClient creates a rate-lookup client for the given service URL and base currency
func NewClient(baseURL, base string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		base:       strings.ToUpper(base),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Base returns the base currency code
func (c *Client) Base() string {
	return c.base
}

// ratesResponse mirrors the relevant part of the latest-rates payload
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"` // Currency code -> conversion rate
}

// Rate returns the conversion rate from the base currency to target.
// It returns exactly 1 when target is empty or equals the base currency,
// and falls back to 1 on any lookup failure (fail-open, never an error).
func (c *Client) Rate(target string) float64 {
	target = strings.ToUpper(strings.TrimSpace(target))
	if target == "" || target == c.base {
		return 1 // Base currency needs no conversion and no remote call
	}
	rate, err := c.fetchRate(target)
	if err != nil {
		// Fail open: a broken rate service must not break plan listings
		logrus.WithFields(logrus.Fields{
			"currency": target,      // Requested currency
			"error":    err.Error(), // Lookup failure detail
		}).Warn("Rate lookup failed, defaulting to 1")
		return 1
	}
	return rate
}

// fetchRate performs one remote lookup with no caching or retries
func (c *Client) fetchRate(target string) (float64, error) {
	url := c.baseURL + "/latest/" + c.base // Latest rates for the base currency
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return 0, err // Transport failure
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err // Parse failure
	}
	rate, ok := payload.Rates[target]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no rate for currency %s", target)
	}
	return rate, nil
}
