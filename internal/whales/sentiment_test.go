package whales

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name             string
		buyRatio         float64
		expectedSent     Sentiment
		expectedStrength Strength
	}{
		{"strong bullish", 0.90, SentimentBullish, StrengthStrong},
		{"exactly 0.85 is strong", 0.85, SentimentBullish, StrengthStrong},
		{"moderate bullish", 0.75, SentimentBullish, StrengthModerate},
		{"exactly 0.70 is bullish", 0.70, SentimentBullish, StrengthModerate},
		{"just below 0.70 is neutral", 0.699, SentimentNeutral, StrengthWeak},
		{"midpoint neutral", 0.50, SentimentNeutral, StrengthWeak},
		{"just above 0.30 is neutral", 0.301, SentimentNeutral, StrengthWeak},
		{"exactly 0.30 is bearish", 0.30, SentimentBearish, StrengthModerate},
		{"moderate bearish", 0.20, SentimentBearish, StrengthModerate},
		{"exactly 0.15 is strong bearish", 0.15, SentimentBearish, StrengthStrong},
		{"strong bearish", 0.05, SentimentBearish, StrengthStrong},
		{"all buys", 1.0, SentimentBullish, StrengthStrong},
		{"all sells", 0.0, SentimentBearish, StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentiment, strength := classify(tt.buyRatio)
			if sentiment != tt.expectedSent || strength != tt.expectedStrength {
				t.Errorf("ratio %.3f: got %s/%s, want %s/%s",
					tt.buyRatio, sentiment, strength, tt.expectedSent, tt.expectedStrength)
			}
		})
	}
}

func TestCalculateEmptyTrades(t *testing.T) {
	if got := Calculate(nil, nil); got != nil {
		t.Errorf("empty trades: got %+v, want nil", got)
	}
	if got := Calculate([]Trade{}, nil); got != nil {
		t.Errorf("empty trades: got %+v, want nil", got)
	}
}

func TestCalculateAggregates(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Unix() - 3600
	old := now.Unix() - 7*86400

	trades := []Trade{
		{ProxyWallet: "0xaaa", Side: "BUY", TotalValue: 400, Timestamp: recent},
		{ProxyWallet: "0xbbb", Side: "BUY", TotalValue: 300, Timestamp: recent},
		{ProxyWallet: "0xaaa", Side: "SELL", TotalValue: 300, Timestamp: old},
	}

	activity := calculateAt(trades, nil, now)
	if activity == nil {
		t.Fatal("expected a summary")
	}

	if activity.UniqueWhales != 2 {
		t.Errorf("unique whales: got %d, want 2 (same wallet counted once)", activity.UniqueWhales)
	}
	if activity.TotalTrades != 3 {
		t.Errorf("total trades: got %d, want 3", activity.TotalTrades)
	}
	if activity.BuyVolume != 700 || activity.SellVolume != 300 {
		t.Errorf("volumes: got %v/%v, want 700/300", activity.BuyVolume, activity.SellVolume)
	}
	if activity.BuyRatio != 0.7 {
		t.Errorf("buy ratio: got %v, want 0.7", activity.BuyRatio)
	}
	if activity.Sentiment != SentimentBullish || activity.SentimentStrength != StrengthModerate {
		t.Errorf("sentiment: got %s/%s, want BULLISH/MODERATE",
			activity.Sentiment, activity.SentimentStrength)
	}
	if diff := activity.AvgTradeSize - 1000.0/3; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("avg trade size: got %v, want %v", activity.AvgTradeSize, 1000.0/3)
	}
	if activity.Last24hTrades != 2 || activity.Last24hVolume != 700 {
		t.Errorf("last 24h: got %d trades / %v volume, want 2 / 700",
			activity.Last24hTrades, activity.Last24hVolume)
	}
	if !activity.IsActive {
		t.Error("market with recent trades should be active")
	}
	if activity.Divergence != nil {
		t.Errorf("divergence without implied probability: got %v, want nil", *activity.Divergence)
	}
}

func TestCalculateZeroVolumeDefaultsNeutral(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	trades := []Trade{
		{ProxyWallet: "0xaaa", Side: "BUY", TotalValue: 0, Timestamp: now.Unix()},
	}

	activity := calculateAt(trades, nil, now)
	if activity == nil {
		t.Fatal("expected a summary")
	}
	if activity.BuyRatio != 0.5 {
		t.Errorf("buy ratio on zero volume: got %v, want 0.5", activity.BuyRatio)
	}
	if activity.Sentiment != SentimentNeutral {
		t.Errorf("sentiment: got %s, want NEUTRAL", activity.Sentiment)
	}
}

func TestCalculateDivergence(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	trades := []Trade{
		{ProxyWallet: "0xaaa", Side: "BUY", TotalValue: 800, Timestamp: now.Unix()},
		{ProxyWallet: "0xbbb", Side: "SELL", TotalValue: 200, Timestamp: now.Unix()},
	}

	implied := 0.55
	activity := calculateAt(trades, &implied, now)
	if activity == nil {
		t.Fatal("expected a summary")
	}
	if activity.Divergence == nil {
		t.Fatal("expected a divergence value")
	}

	// buyRatio 0.80 vs implied 0.55 is +25 percentage points.
	if diff := *activity.Divergence - 25; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("divergence: got %v, want 25", *activity.Divergence)
	}
}

func TestCalculateStaleMarketInactive(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	trades := []Trade{
		{ProxyWallet: "0xaaa", Side: "BUY", TotalValue: 500, Timestamp: now.Unix() - 3*86400},
	}

	activity := calculateAt(trades, nil, now)
	if activity == nil {
		t.Fatal("expected a summary")
	}
	if activity.IsActive {
		t.Error("market with no trades in 24h should be inactive")
	}
	if activity.Last24hTrades != 0 || activity.Last24hVolume != 0 {
		t.Errorf("last 24h: got %d / %v, want 0 / 0",
			activity.Last24hTrades, activity.Last24hVolume)
	}
}
