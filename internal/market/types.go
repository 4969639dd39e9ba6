package market

import "time"

// Outcome is one side of a market, with its price interpreted directly as a
// 0-1 probability. Price and Probability are sourced from the same upstream
// field; both are kept because downstream consumers address them by either
// name.
type Outcome struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Probability    float64 `json:"probability"`
	Volume24h      float64 `json:"volume24h"`
	PriceChange24h float64 `json:"priceChange24h"` // Signed fraction; 0 when upstream omits it
}

// Category is a derived classification, not part of the source data.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Market is the canonical market record produced by the normalizer.
type Market struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Outcomes    []Outcome `json:"outcomes"`
	Volume      float64   `json:"volume"`
	Liquidity   float64   `json:"liquidity"`
	Volume24h   float64   `json:"volume24h"`
	EndDate     time.Time `json:"endDate"`
	Image       string    `json:"image,omitempty"`
	Active      bool      `json:"active"`
}

// ImpliedProbability returns the price of the first outcome, interpreted as
// the market's implied probability. ok is false when the market has no
// outcomes.
func (m *Market) ImpliedProbability() (float64, bool) {
	if len(m.Outcomes) == 0 {
		return 0, false
	}
	return m.Outcomes[0].Probability, true
}

// ClosingWindow buckets markets by time until close.
type ClosingWindow string

const (
	ClosingAll  ClosingWindow = "all"
	ClosingSoon ClosingWindow = "soon" // within 30 days
	// The week/month labels predate the current windows and no longer match
	// them; the behavior is kept until product settles on new labels.
	ClosingWeek  ClosingWindow = "week"  // within 60 days
	ClosingMonth ClosingWindow = "month" // within 180 days
)

// SortKey selects a market ordering.
type SortKey string

const (
	SortVolume    SortKey = "volume"
	SortLiquidity SortKey = "liquidity"
	SortClosing   SortKey = "closing"
	SortTrending  SortKey = "trending"
)

// Filters describes multi-criteria market filtering. Zero-valued criteria are
// no-ops, so the zero Filters is the identity.
type Filters struct {
	Search       string        `json:"search,omitempty"`
	Category     string        `json:"category,omitempty"`
	MinLiquidity float64       `json:"minLiquidity,omitempty"`
	ClosingTime  ClosingWindow `json:"closingTime,omitempty"`
}
