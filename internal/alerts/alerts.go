// Package alerts fans whale-trade notifications out to configured sinks.
package alerts

import (
	"context"
	"time"
)

// Payload carries everything a sink needs to render a whale trade alert.
type Payload struct {
	WalletAddress string
	WalletShort   string // Shortened for display
	TraderName    string

	MarketTitle string
	EventSlug   string
	MarketURL   string // Referral-tagged venue link

	Side       string
	Outcome    string
	Size       float64
	Price      float64
	TotalValue float64

	TransactionHash string
	TxHashShort     string // Shortened for display
	Timestamp       time.Time
	Environment     string
}

// Sender defines the interface for alert sinks
type Sender interface {
	Send(ctx context.Context, payload *Payload) error
}
