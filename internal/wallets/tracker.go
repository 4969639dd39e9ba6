// Package wallets assigns reputation tiers to Solana wallets from their SOL
// balance.
package wallets

import (
	"context"
	"sync"

	"github.com/lloydfonterra/PolyMarks/internal/config"
	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/solana"
	"github.com/sirupsen/logrus"
)

// Reputation is a balance-derived wallet tier.
type Reputation string

const (
	ReputationWhale   Reputation = "whale"   // > 10K SOL
	ReputationInsider Reputation = "insider" // > 1K SOL
	ReputationHolder  Reputation = "holder"
	ReputationDegen   Reputation = "degen" // < 10 SOL
)

// Static balance thresholds (SOL).
const (
	whaleBalance   = 10_000
	insiderBalance = 1_000
	degenBalance   = 10
)

// Wallet is a tracked Solana wallet with its reputation.
type Wallet struct {
	Address    string     `json:"address"`
	Balance    float64    `json:"balance"` // SOL
	IsWhale    bool       `json:"isWhale"`
	Reputation Reputation `json:"reputation"`
}

// Tracker performs wallet lookups via the Helius client, fanning batch
// lookups out over a fixed worker pool.
type Tracker struct {
	client     *solana.Client
	workerPool chan struct{}
	log        *logrus.Logger
}

// NewTracker creates a wallet tracker.
func NewTracker(cfg *config.Config, client *solana.Client, log *logrus.Logger) *Tracker {
	workers := cfg.WalletLookupWorkers
	if workers <= 0 {
		workers = 1
	}
	pool := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		pool <- struct{}{}
	}

	return &Tracker{client: client, workerPool: pool, log: log}
}

// Available reports whether the underlying RPC client is configured.
func (t *Tracker) Available() bool {
	return t.client.Available()
}

// classify maps a SOL balance to a reputation tier.
func classify(balance float64) Reputation {
	switch {
	case balance > whaleBalance:
		return ReputationWhale
	case balance > insiderBalance:
		return ReputationInsider
	case balance < degenBalance:
		return ReputationDegen
	default:
		return ReputationHolder
	}
}

// TrackWallet looks up one wallet. It returns nil when the RPC client is not
// configured, the address is invalid, or the lookup fails; none of those is
// fatal to the caller.
func (t *Tracker) TrackWallet(ctx context.Context, address string) *Wallet {
	if !t.client.Available() {
		t.log.Warn("Helius RPC not configured - wallet tracking disabled")
		return nil
	}
	if !solana.IsValidAddress(address) {
		metrics.RecordWalletLookup("invalid")
		t.log.WithField("address", address).Warn("Invalid Solana address")
		return nil
	}

	balance, err := t.client.GetBalance(ctx, address)
	if err != nil {
		metrics.RecordWalletLookup("error")
		t.log.WithError(err).WithField("address", address).Warn("Wallet balance lookup failed")
		return nil
	}

	metrics.RecordWalletLookup("success")
	reputation := classify(balance)
	return &Wallet{
		Address:    address,
		Balance:    balance,
		IsWhale:    reputation == ReputationWhale,
		Reputation: reputation,
	}
}

// TrackWallets looks up several wallets concurrently over the worker pool.
// Invalid addresses and failed lookups are skipped; the result keeps no
// particular order.
func (t *Tracker) TrackWallets(ctx context.Context, addresses []string) []Wallet {
	if !t.client.Available() {
		return nil
	}

	var (
		mu      sync.Mutex
		wallets []Wallet
		wg      sync.WaitGroup
	)

	for _, address := range addresses {
		wg.Add(1)
		go func(addr string) {
			defer wg.Done()

			<-t.workerPool
			defer func() { t.workerPool <- struct{}{} }()

			if w := t.TrackWallet(ctx, addr); w != nil {
				mu.Lock()
				wallets = append(wallets, *w)
				mu.Unlock()
			}
		}(address)
	}

	wg.Wait()
	return wallets
}

// ShortAddress truncates a wallet address for display.
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
