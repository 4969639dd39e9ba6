// Package whales canonicalizes the whale trade feed and derives per-market
// buy/sell sentiment from it.
package whales

// Trade is a canonical whale trade. The trader's wallet address stands in for
// identity; display fields are always populated, with placeholders when the
// source omits them.
type Trade struct {
	ProxyWallet  string `json:"proxyWallet"`
	Name         string `json:"name"`
	Pseudonym    string `json:"pseudonym"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`

	Side       string  `json:"side"` // BUY, SELL
	Size       float64 `json:"size"`
	Price      float64 `json:"price"`
	TotalValue float64 `json:"totalValue"`

	Title        string `json:"title"`
	Slug         string `json:"slug"`
	EventSlug    string `json:"eventSlug"`
	Icon         string `json:"icon"`
	Outcome      string `json:"outcome"`
	OutcomeIndex int    `json:"outcomeIndex"`

	TransactionHash string `json:"transactionHash"`
	Timestamp       int64  `json:"timestamp"`

	Asset       string `json:"asset"`
	ConditionID string `json:"conditionId"`
}

// TimeRange buckets trades by age.
type TimeRange string

const (
	RangeAll  TimeRange = "all"
	RangeHour TimeRange = "1h"
	RangeDay  TimeRange = "24h"
	RangeWeek TimeRange = "7d"
)

// TradeFilters narrows a trade list. Zero values are no-ops.
type TradeFilters struct {
	Side      string    `json:"side,omitempty"` // BUY, SELL, or ALL
	TimeRange TimeRange `json:"timeRange,omitempty"`
	MinAmount float64   `json:"minAmount,omitempty"`
}

// Sentiment classifies whale positioning on a market.
type Sentiment string

const (
	SentimentBullish Sentiment = "BULLISH"
	SentimentBearish Sentiment = "BEARISH"
	SentimentNeutral Sentiment = "NEUTRAL"
)

// Strength qualifies how one-sided the sentiment is.
type Strength string

const (
	StrengthStrong   Strength = "STRONG"
	StrengthModerate Strength = "MODERATE"
	StrengthWeak     Strength = "WEAK"
)

// MarketWhaleActivity is the derived, per-market whale summary. It is
// recomputed from scratch on every request and never persisted.
type MarketWhaleActivity struct {
	UniqueWhales int     `json:"uniqueWhales"`
	TotalTrades  int     `json:"totalTrades"`
	TotalVolume  float64 `json:"totalVolume"`
	AvgTradeSize float64 `json:"avgTradeSize"`

	BuyVolume  float64 `json:"buyVolume"`
	SellVolume float64 `json:"sellVolume"`
	BuyRatio   float64 `json:"buyRatio"` // 0-1; 0.5 means no lean either way

	Sentiment         Sentiment `json:"sentiment"`
	SentimentStrength Strength  `json:"sentimentStrength"`
	// Divergence is the percentage-point gap between whale buy ratio and the
	// market's implied probability; nil when no implied probability was
	// supplied.
	Divergence *float64 `json:"divergence,omitempty"`

	Last24hVolume float64 `json:"last24hVolume"`
	Last24hTrades int     `json:"last24hTrades"`
	IsActive      bool    `json:"isActive"`
}
