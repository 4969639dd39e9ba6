package whales

import (
	"context"
	"strings"

	"github.com/lloydfonterra/PolyMarks/internal/config"
	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/polymarket/dataapi"
	"github.com/sirupsen/logrus"
)

// Service joins the whale trade feed with the pure sentiment calculator. The
// calculator itself never performs I/O; the service owns the scoped fetch and
// degrades to "no data" on any failure.
type Service struct {
	cfg    *config.Config
	client *dataapi.Client
	log    *logrus.Logger
}

// NewService creates a whale sentiment service around the Data API client.
func NewService(cfg *config.Config, client *dataapi.Client, log *logrus.Logger) *Service {
	return &Service{cfg: cfg, client: client, log: log}
}

// MarketWhaleActivity computes the whale summary for one market, identified
// by its event slug. impliedProbability, when non-nil, enables the divergence
// metric. A failed or empty fetch yields nil; the caller proceeds without
// whale data.
func (s *Service) MarketWhaleActivity(ctx context.Context, eventSlug string, impliedProbability *float64) *MarketWhaleActivity {
	raw, err := s.client.GetTrades(ctx, dataapi.TradeParams{
		Limit:        s.cfg.WhaleTradeLimit,
		FilterType:   "CASH",
		FilterAmount: s.cfg.WhaleMinTradeUSD,
		EventID:      eventSlug,
	})
	if err != nil {
		s.log.WithError(err).WithField("event_slug", eventSlug).Warn("Whale trade fetch failed")
		metrics.RecordSentiment("no_data")
		return nil
	}

	activity := Calculate(TransformTrades(raw, TradeFilters{}), impliedProbability)
	if activity == nil {
		metrics.RecordSentiment("no_data")
		return nil
	}

	metrics.RecordSentiment(strings.ToLower(string(activity.Sentiment)))
	return activity
}

// WhaleTrades fetches the general whale feed and canonicalizes it.
func (s *Service) WhaleTrades(ctx context.Context, limit int, filters TradeFilters) ([]Trade, error) {
	minAmount := filters.MinAmount
	if minAmount <= 0 {
		minAmount = s.cfg.WhaleMinTradeUSD
	}

	raw, err := s.client.GetTrades(ctx, dataapi.TradeParams{
		Limit:        limit,
		FilterType:   "CASH",
		FilterAmount: minAmount,
	})
	if err != nil {
		return nil, err
	}

	return TransformTrades(raw, filters), nil
}
