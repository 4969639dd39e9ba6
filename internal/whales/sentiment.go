package whales

import "time"

// Sentiment classification thresholds on the buy ratio. Fixed constants, not
// configurable per call.
const (
	bullishRatio       = 0.70
	bullishStrongRatio = 0.85
	bearishRatio       = 0.30
	bearishStrongRatio = 0.15
)

// Calculate aggregates a market's whale trades into a sentiment summary.
// It returns nil when the trade list is empty: "no data" is distinct from
// neutral sentiment. When impliedProbability is non-nil the summary includes
// the divergence between whale buying and the market-implied probability, in
// percentage points.
func Calculate(trades []Trade, impliedProbability *float64) *MarketWhaleActivity {
	return calculateAt(trades, impliedProbability, time.Now())
}

func calculateAt(trades []Trade, impliedProbability *float64, now time.Time) *MarketWhaleActivity {
	if len(trades) == 0 {
		return nil
	}

	wallets := make(map[string]struct{}, len(trades))
	var buyVolume, sellVolume float64
	for _, t := range trades {
		wallets[t.ProxyWallet] = struct{}{}
		switch t.Side {
		case "BUY":
			buyVolume += t.TotalValue
		case "SELL":
			sellVolume += t.TotalValue
		}
	}

	totalVolume := buyVolume + sellVolume

	// Zero combined volume means no lean either way, not an error.
	buyRatio := 0.5
	if totalVolume > 0 {
		buyRatio = buyVolume / totalVolume
	}

	sentiment, strength := classify(buyRatio)

	var divergence *float64
	if impliedProbability != nil {
		d := (buyRatio - *impliedProbability) * 100
		divergence = &d
	}

	cutoff := now.Unix() - 86400
	var last24hVolume float64
	last24hTrades := 0
	for _, t := range trades {
		if t.Timestamp >= cutoff {
			last24hVolume += t.TotalValue
			last24hTrades++
		}
	}

	return &MarketWhaleActivity{
		UniqueWhales:      len(wallets),
		TotalTrades:       len(trades),
		TotalVolume:       totalVolume,
		AvgTradeSize:      totalVolume / float64(len(trades)),
		BuyVolume:         buyVolume,
		SellVolume:        sellVolume,
		BuyRatio:          buyRatio,
		Sentiment:         sentiment,
		SentimentStrength: strength,
		Divergence:        divergence,
		Last24hVolume:     last24hVolume,
		Last24hTrades:     last24hTrades,
		IsActive:          last24hTrades > 0,
	}
}

// classify maps a buy ratio onto sentiment and strength. Boundaries are
// inclusive: exactly 0.70 is BULLISH/MODERATE, exactly 0.85 BULLISH/STRONG,
// exactly 0.30 BEARISH/MODERATE, exactly 0.15 BEARISH/STRONG.
func classify(buyRatio float64) (Sentiment, Strength) {
	switch {
	case buyRatio >= bullishRatio:
		if buyRatio >= bullishStrongRatio {
			return SentimentBullish, StrengthStrong
		}
		return SentimentBullish, StrengthModerate
	case buyRatio <= bearishRatio:
		if buyRatio <= bearishStrongRatio {
			return SentimentBearish, StrengthStrong
		}
		return SentimentBearish, StrengthModerate
	default:
		return SentimentNeutral, StrengthWeak
	}
}
