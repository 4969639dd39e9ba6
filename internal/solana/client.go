// Package solana is a minimal Helius JSON-RPC client for read-only balance
// queries.
package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lloydfonterra/PolyMarks/internal/config"
	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/ratelimit"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

// Client handles communication with a Helius (Solana) RPC endpoint.
type Client struct {
	rpcURL     string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

// NewClient creates a Helius RPC client. Available() reports false when no
// RPC URL is configured; callers degrade by skipping wallet lookups.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		rpcURL:     cfg.HeliusRPCURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    ratelimit.New(cfg.HeliusRPS),
	}
}

// Available reports whether the client is configured.
func (c *Client) Available() bool {
	return c.rpcURL != ""
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type balanceResponse struct {
	Result struct {
		Value uint64 `json:"value"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

// GetBalance returns the SOL balance of an address.
func (c *Client) GetBalance(ctx context.Context, address string) (float64, error) {
	if !c.Available() {
		return 0, fmt.Errorf("helius RPC not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getBalance",
		Params:  []any{address},
	})
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.rpcURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordAPIRequest("helius", "getBalance", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var decoded balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if decoded.Error != nil {
		return 0, fmt.Errorf("rpc error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}

	return float64(decoded.Result.Value) / LamportsPerSOL, nil
}

// base58 alphabet used by Solana addresses (no 0, O, I, l).
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsValidAddress performs a structural check on a Solana address: base58
// characters, 32-44 long.
func IsValidAddress(address string) bool {
	if len(address) < 32 || len(address) > 44 {
		return false
	}
	for _, r := range address {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}
