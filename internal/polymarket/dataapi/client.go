package dataapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lloydfonterra/PolyMarks/internal/config"
	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/ratelimit"
)

// Client handles communication with the Polymarket Data API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

// NewClient creates a new Data API client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.DataAPIBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    ratelimit.New(cfg.DataAPITradesRPS),
	}
}

// GetTrades fetches whale trades, filtered server-side by notional USD.
func (c *Client) GetTrades(ctx context.Context, params TradeParams) ([]Trade, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := url.Parse(c.baseURL + "/trades")
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}

	q := u.Query()
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.FilterType != "" {
		q.Set("filterType", params.FilterType)
	}
	if params.FilterAmount > 0 {
		q.Set("filterAmount", strconv.FormatFloat(params.FilterAmount, 'f', 2, 64))
	}
	if params.EventID != "" {
		q.Set("eventId", params.EventID)
	}
	if params.Side != "" {
		q.Set("side", params.Side)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordAPIRequest("data", "/trades", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var trades []Trade
	if err := json.NewDecoder(resp.Body).Decode(&trades); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return trades, nil
}
