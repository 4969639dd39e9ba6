package market

import (
	"testing"
	"time"
)

func testMarkets(now time.Time) []Market {
	return []Market{
		{
			ID:        "election-2028",
			Question:  "Will the Democrat candidate win the election?",
			Category:  Category{ID: "politics", Name: "Politics"},
			Liquidity: 100000,
			EndDate:   now.Add(10 * 24 * time.Hour),
		},
		{
			ID:        "btc-200k",
			Question:  "Will Bitcoin reach $200K?",
			Category:  Category{ID: "crypto", Name: "Crypto"},
			Liquidity: 50000,
			EndDate:   now.Add(45 * 24 * time.Hour),
		},
		{
			ID:        "superbowl",
			Question:  "Super Bowl winner?",
			Category:  Category{ID: "sports", Name: "Sports"},
			Liquidity: 5000,
			EndDate:   now.Add(150 * 24 * time.Hour),
		},
		{
			ID:        "expired",
			Question:  "Already settled election market",
			Category:  Category{ID: "politics", Name: "Politics"},
			Liquidity: 1000,
			EndDate:   now.Add(-24 * time.Hour),
		},
	}
}

func TestApplyFiltersIdentity(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	markets := testMarkets(now)

	out := applyFiltersAt(markets, Filters{}, now)
	if len(out) != len(markets) {
		t.Fatalf("empty filters: got %d markets, want %d", len(out), len(markets))
	}
	for i := range out {
		if out[i].ID != markets[i].ID {
			t.Errorf("order changed at %d: got '%s', want '%s'", i, out[i].ID, markets[i].ID)
		}
	}
}

func TestFilterBySearch(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	markets := testMarkets(now)

	tests := []struct {
		name        string
		search      string
		expectedIDs []string
	}{
		{"question substring", "bitcoin", []string{"btc-200k"}},
		{"case insensitive", "BITCOIN", []string{"btc-200k"}},
		{"category name match", "sports", []string{"superbowl"}},
		{"multiple matches", "election", []string{"election-2028", "expired"}},
		{"no match", "weather", nil},
		{"whitespace only is a no-op", "   ", []string{"election-2028", "btc-200k", "superbowl", "expired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filterBySearch(markets, tt.search)
			assertMarketIDs(t, out, tt.expectedIDs)
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	markets := testMarkets(now)

	tests := []struct {
		name        string
		category    string
		expectedIDs []string
	}{
		{"crypto keyword match", "crypto", []string{"btc-200k"}},
		{"politics matches by keywords", "politics", []string{"election-2028", "expired"}},
		{"all is a no-op", "all", []string{"election-2028", "btc-200k", "superbowl", "expired"}},
		{"unknown category is a no-op", "weather", []string{"election-2028", "btc-200k", "superbowl", "expired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filterByCategory(markets, tt.category)
			assertMarketIDs(t, out, tt.expectedIDs)
		})
	}
}

func TestFilterByLiquidity(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	markets := testMarkets(now)

	tests := []struct {
		name         string
		minLiquidity float64
		expectedIDs  []string
	}{
		{"high floor", 80000, []string{"election-2028"}},
		{"threshold inclusive", 50000, []string{"election-2028", "btc-200k"}},
		{"zero keeps all", 0, []string{"election-2028", "btc-200k", "superbowl", "expired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filterByLiquidity(markets, tt.minLiquidity)
			assertMarketIDs(t, out, tt.expectedIDs)
		})
	}
}

func TestFilterByClosingTime(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	markets := testMarkets(now)

	tests := []struct {
		name        string
		window      ClosingWindow
		expectedIDs []string
	}{
		{"soon is 30 days", ClosingSoon, []string{"election-2028"}},
		{"week bucket is 60 days", ClosingWeek, []string{"election-2028", "btc-200k"}},
		{"month bucket is 180 days", ClosingMonth, []string{"election-2028", "btc-200k", "superbowl"}},
		{"all keeps everything", ClosingAll, []string{"election-2028", "btc-200k", "superbowl", "expired"}},
		{"unknown window is a no-op", ClosingWindow("year"), []string{"election-2028", "btc-200k", "superbowl", "expired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filterByClosingTime(markets, tt.window, now)
			assertMarketIDs(t, out, tt.expectedIDs)
		})
	}
}

func TestFilterByClosingTimeExcludesExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	markets := testMarkets(now)

	for _, window := range []ClosingWindow{ClosingSoon, ClosingWeek, ClosingMonth} {
		out := filterByClosingTime(markets, window, now)
		for _, m := range out {
			if m.ID == "expired" {
				t.Errorf("window %s included an already-closed market", window)
			}
		}
	}
}

func TestApplyFiltersCombined(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	markets := testMarkets(now)

	out := applyFiltersAt(markets, Filters{
		Category:     "politics",
		MinLiquidity: 10000,
		ClosingTime:  ClosingSoon,
	}, now)

	assertMarketIDs(t, out, []string{"election-2028"})
}

func assertMarketIDs(t *testing.T, markets []Market, expected []string) {
	t.Helper()
	if len(markets) != len(expected) {
		t.Fatalf("got %d markets, want %d", len(markets), len(expected))
	}
	for i, m := range markets {
		if m.ID != expected[i] {
			t.Errorf("position %d: got '%s', want '%s'", i, m.ID, expected[i])
		}
	}
}
