// Package snapshot holds the latest fetched market and trade data in memory.
// Every poll cycle replaces a snapshot wholesale: last completed fetch wins,
// and nothing is persisted or mutated in place.
package snapshot

import (
	"sync"
	"time"

	"github.com/lloydfonterra/PolyMarks/internal/market"
	"github.com/lloydfonterra/PolyMarks/internal/whales"
)

// Store is a concurrency-safe holder for the current snapshots. Callers must
// treat returned slices as read-only.
type Store struct {
	mu sync.RWMutex

	markets   []market.Market
	marketsAt time.Time

	trades   []whales.Trade
	tradesAt time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SetMarkets replaces the market snapshot.
func (s *Store) SetMarkets(markets []market.Market) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markets = markets
	s.marketsAt = time.Now()
}

// Markets returns the current market snapshot and its fetch time.
func (s *Store) Markets() ([]market.Market, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.markets, s.marketsAt
}

// MarketByID finds a market in the current snapshot.
func (s *Store) MarketByID(id string) (market.Market, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.markets {
		if m.ID == id {
			return m, true
		}
	}
	return market.Market{}, false
}

// SetTrades replaces the whale trade snapshot.
func (s *Store) SetTrades(trades []whales.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = trades
	s.tradesAt = time.Now()
}

// Trades returns the current whale trade snapshot and its fetch time.
func (s *Store) Trades() ([]whales.Trade, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades, s.tradesAt
}

// Ready reports whether at least one market fetch has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.marketsAt.IsZero()
}
