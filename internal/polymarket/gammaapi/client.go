// Package gammaapi fetches market payloads from the Polymarket Gamma API.
// Records are decoded individually so one malformed entry drops that record,
// never the whole batch.
package gammaapi

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
	"github.com/lloydfonterra/PolyMarks/internal/market"
	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/ratelimit"
	"github.com/sirupsen/logrus"
)

// Client handles communication with the Polymarket Gamma API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	log        *logrus.Logger
}

// NewClient creates a new Gamma API client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		baseURL:    cfg.GammaAPIBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    ratelimit.New(cfg.GammaAPIMarketsRPS),
		log:        log,
	}
}

// GetActiveMarkets fetches active, unresolved markets and normalizes them.
func (c *Client) GetActiveMarkets(ctx context.Context, limit int) ([]market.Market, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := url.Parse(c.baseURL + "/markets")
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}

	q := u.Query()
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	q.Set("active", "true")
	q.Set("closed", "false")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordAPIRequest("gamma", "/markets", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	markets := make([]market.Market, 0, len(records))
	for _, record := range records {
		var raw market.RawMarket
		if err := json.Unmarshal(record, &raw); err != nil {
			metrics.MarketsDropped.Inc()
			c.log.WithError(err).Warn("Dropping malformed market record")
			continue
		}
		if m := market.NormalizeMarket(&raw); m != nil {
			markets = append(markets, *m)
		}
	}

	return markets, nil
}
