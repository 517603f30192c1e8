// Package market consumes the public price feed behind the decorative
// ticker. Read-only; quote staleness is acceptable, an outage just means
// the ticker shows the last known snapshot.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/ports"
)

// Client fetches simple-price quotes from a CoinGecko-compatible API.
type Client struct {
	baseURL string
	coins   []string
	client  *http.Client
}

var _ ports.PriceSource = (*Client)(nil)

// NewClient registers the API base URL and the coin ids to quote.
func NewClient(baseURL string, coins []string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		coins:   coins,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Fetch pulls USD quotes with 24h change for the configured coins.
func (c *Client) Fetch(ctx context.Context) ([]domain.Price, error) {
	if len(c.coins) == 0 {
		return nil, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(c.coins, ","))
	query.Set("vs_currencies", "usd")
	query.Set("include_24hr_change", "true")
	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market feed error: %s", resp.Status)
	}

	var payload map[string]struct {
		USD       float64 `json:"usd"`
		USDChange float64 `json:"usd_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode prices: %w", err)
	}

	prices := make([]domain.Price, 0, len(payload))
	for symbol, quote := range payload {
		prices = append(prices, domain.Price{
			Symbol:    symbol,
			USD:       quote.USD,
			Change24h: quote.USDChange,
		})
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].Symbol < prices[j].Symbol })

	return prices, nil
}
