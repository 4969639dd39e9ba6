package market

import "sort"

// SortMarkets orders markets by the given key. Sorting is stable and operates
// on a copy; the input slice is never mutated. An unknown key returns the
// input unchanged.
func SortMarkets(markets []Market, key SortKey) []Market {
	var less func(a, b Market) bool

	switch key {
	case SortVolume:
		less = func(a, b Market) bool { return a.Volume > b.Volume }
	case SortLiquidity:
		less = func(a, b Market) bool { return a.Liquidity > b.Liquidity }
	case SortClosing:
		less = func(a, b Market) bool { return a.EndDate.Before(b.EndDate) }
	case SortTrending:
		less = func(a, b Market) bool { return a.Volume24h > b.Volume24h }
	default:
		return markets
	}

	sorted := make([]Market, len(markets))
	copy(sorted, markets)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
