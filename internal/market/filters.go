package market

import (
	"strings"
	"time"
)

// ApplyFilters narrows markets by sequential AND of the given criteria. Each
// absent criterion is a no-op, so an empty Filters returns the input
// unchanged. The input slice is never mutated.
func ApplyFilters(markets []Market, filters Filters) []Market {
	return applyFiltersAt(markets, filters, time.Now())
}

func applyFiltersAt(markets []Market, filters Filters, now time.Time) []Market {
	filtered := markets

	if filters.Search != "" {
		filtered = filterBySearch(filtered, filters.Search)
	}
	if filters.Category != "" {
		filtered = filterByCategory(filtered, filters.Category)
	}
	if filters.MinLiquidity > 0 {
		filtered = filterByLiquidity(filtered, filters.MinLiquidity)
	}
	if filters.ClosingTime != "" {
		filtered = filterByClosingTime(filtered, filters.ClosingTime, now)
	}

	return filtered
}

// filterBySearch keeps markets whose question, description, or category name
// contains the query, case-insensitively.
func filterBySearch(markets []Market, search string) []Market {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return markets
	}

	var out []Market
	for _, m := range markets {
		if strings.Contains(strings.ToLower(m.Question), query) ||
			strings.Contains(strings.ToLower(m.Description), query) ||
			strings.Contains(strings.ToLower(m.Category.Name), query) {
			out = append(out, m)
		}
	}
	return out
}

// filterByCategory keeps markets whose question+description text contains any
// keyword of the selected category, using the same word-boundary table the
// normalizer classifies with. Unknown categories are a no-op.
func filterByCategory(markets []Market, category string) []Market {
	category = strings.ToLower(category)
	if category == "" || category == "all" || !knownCategory(category) {
		return markets
	}

	var out []Market
	for _, m := range markets {
		if matchesCategory(category, m.Question+" "+m.Description) {
			out = append(out, m)
		}
	}
	return out
}

func filterByLiquidity(markets []Market, minLiquidity float64) []Market {
	var out []Market
	for _, m := range markets {
		if m.Liquidity >= minLiquidity {
			out = append(out, m)
		}
	}
	return out
}

// filterByClosingTime keeps markets closing within the window's day count.
// Markets already past their end date never match any bucket.
func filterByClosingTime(markets []Market, window ClosingWindow, now time.Time) []Market {
	if window == "" || window == ClosingAll {
		return markets
	}

	var maxDays float64
	switch window {
	case ClosingSoon:
		maxDays = 30
	case ClosingWeek:
		maxDays = 60
	case ClosingMonth:
		maxDays = 180
	default:
		return markets
	}

	var out []Market
	for _, m := range markets {
		daysUntil := m.EndDate.Sub(now).Hours() / 24
		if daysUntil > 0 && daysUntil <= maxDays {
			out = append(out, m)
		}
	}
	return out
}
