package alerts

import (
	"context"
	"sync"
	"time"

	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/referral"
	"github.com/lloydfonterra/PolyMarks/internal/wallets"
	"github.com/lloydfonterra/PolyMarks/internal/whales"
	"github.com/sirupsen/logrus"
)

// Watcher diffs successive whale trade snapshots by transaction hash and
// alerts on trades it has not seen before. The first snapshot only seeds the
// seen set so a restart does not replay the whole feed.
type Watcher struct {
	sender      Sender
	senderType  string
	minUSD      float64
	environment string
	referrals   *referral.Generator
	log         *logrus.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewWatcher creates a watcher that alerts on new trades at or above minUSD.
func NewWatcher(sender Sender, senderType string, minUSD float64, environment string, referrals *referral.Generator, log *logrus.Logger) *Watcher {
	return &Watcher{
		sender:      sender,
		senderType:  senderType,
		minUSD:      minUSD,
		environment: environment,
		referrals:   referrals,
		log:         log,
	}
}

// Observe takes the latest trade snapshot and sends alerts for new trades.
func (w *Watcher) Observe(ctx context.Context, trades []whales.Trade) {
	w.mu.Lock()
	previous := w.seen
	next := make(map[string]struct{}, len(trades))
	for _, t := range trades {
		next[t.TransactionHash] = struct{}{}
	}
	w.seen = next
	w.mu.Unlock()

	if previous == nil {
		return
	}

	for _, t := range trades {
		if _, ok := previous[t.TransactionHash]; ok {
			continue
		}
		if t.TotalValue < w.minUSD {
			continue
		}
		w.alert(ctx, t)
	}
}

func (w *Watcher) alert(ctx context.Context, t whales.Trade) {
	payload := &Payload{
		WalletAddress:   t.ProxyWallet,
		WalletShort:     wallets.ShortAddress(t.ProxyWallet),
		TraderName:      t.Name,
		MarketTitle:     t.Title,
		EventSlug:       t.EventSlug,
		MarketURL:       w.referrals.URL(t.EventSlug, &referral.Options{Campaign: "whale-alert"}),
		Side:            t.Side,
		Outcome:         t.Outcome,
		Size:            t.Size,
		Price:           t.Price,
		TotalValue:      t.TotalValue,
		TransactionHash: t.TransactionHash,
		TxHashShort:     shortHash(t.TransactionHash),
		Timestamp:       time.Unix(t.Timestamp, 0),
		Environment:     w.environment,
	}

	if err := w.sender.Send(ctx, payload); err != nil {
		metrics.RecordAlert("error", w.senderType)
		w.log.WithError(err).WithField("tx_hash", payload.TxHashShort).Error("Failed to send whale alert")
		return
	}
	metrics.RecordAlert("success", w.senderType)
}

func shortHash(hash string) string {
	if len(hash) <= 10 {
		return hash
	}
	return hash[:10] + "..."
}
