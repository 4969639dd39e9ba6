package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DiscordSender sends alerts to Discord via webhook
type DiscordSender struct {
	webhookURL string
	httpClient *http.Client
}

// NewDiscordSender creates a new Discord sender
func NewDiscordSender(webhookURL string) *DiscordSender {
	return &DiscordSender{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send sends the alert to Discord
func (s *DiscordSender) Send(ctx context.Context, payload *Payload) error {
	webhookPayload := map[string]interface{}{
		"embeds": []interface{}{s.buildEmbed(payload)},
	}

	body, err := json.Marshal(webhookPayload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil
}

func (s *DiscordSender) buildEmbed(payload *Payload) map[string]interface{} {
	var title string
	var color int
	if payload.Side == "BUY" {
		title = "🐋 Whale buy"
		color = 0x22C55E // Green
	} else {
		title = "🐋 Whale sell"
		color = 0xEF4444 // Red
	}

	description := fmt.Sprintf("**$%.2f** on **%s** @ **%.2f**",
		payload.TotalValue,
		payload.Outcome,
		payload.Price,
	)

	fields := []map[string]interface{}{
		{
			"name":   "Trader",
			"value":  fmt.Sprintf("%s (`%s`)", payload.TraderName, payload.WalletShort),
			"inline": true,
		},
		{
			"name":   "Market",
			"value":  truncate(payload.MarketTitle, 100),
			"inline": true,
		},
		{
			"name":   "Side",
			"value":  fmt.Sprintf("%s %s", payload.Side, payload.Outcome),
			"inline": true,
		},
		{
			"name":   "Shares",
			"value":  fmt.Sprintf("%.0f", payload.Size),
			"inline": true,
		},
		{
			"name":   "Total",
			"value":  fmt.Sprintf("$%.2f", payload.TotalValue),
			"inline": true,
		},
		{
			"name":   "Tx",
			"value":  fmt.Sprintf("`%s`", payload.TxHashShort),
			"inline": true,
		},
	}

	footer := map[string]interface{}{
		"text": fmt.Sprintf("PolyMarks • %s • %s", payload.Environment, payload.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC")),
	}

	return map[string]interface{}{
		"title":       title,
		"url":         payload.MarketURL,
		"description": description,
		"color":       color,
		"fields":      fields,
		"footer":      footer,
		"timestamp":   payload.Timestamp.Format(time.RFC3339),
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
