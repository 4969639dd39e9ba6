package whales

import (
	"time"

	"github.com/lloydfonterra/PolyMarks/internal/polymarket/dataapi"
)

var rangeSeconds = map[TimeRange]int64{
	RangeHour: 3600,
	RangeDay:  86400,
	RangeWeek: 604800,
}

// TransformTrades canonicalizes raw trade records and applies the given
// filters. With no filters set the output has the same length as the
// input.
func TransformTrades(raw []dataapi.Trade, filters TradeFilters) []Trade {
	return transformTradesAt(raw, filters, time.Now())
}

func transformTradesAt(raw []dataapi.Trade, filters TradeFilters, now time.Time) []Trade {
	trades := make([]Trade, 0, len(raw))
	for _, r := range raw {
		trades = append(trades, normalizeTrade(r))
	}
	return filterTradesAt(trades, filters, now)
}

// FilterTrades narrows an already-canonical trade list.
func FilterTrades(trades []Trade, filters TradeFilters) []Trade {
	return filterTradesAt(trades, filters, time.Now())
}

func filterTradesAt(trades []Trade, filters TradeFilters, now time.Time) []Trade {
	out := trades

	if filters.Side != "" && filters.Side != "ALL" {
		var kept []Trade
		for _, t := range out {
			if t.Side == filters.Side {
				kept = append(kept, t)
			}
		}
		out = kept
	}

	if secs, ok := rangeSeconds[filters.TimeRange]; ok {
		cutoff := now.Unix() - secs
		var kept []Trade
		for _, t := range out {
			if t.Timestamp >= cutoff {
				kept = append(kept, t)
			}
		}
		out = kept
	}

	if filters.MinAmount > 0 {
		var kept []Trade
		for _, t := range out {
			if t.TotalValue >= filters.MinAmount {
				kept = append(kept, t)
			}
		}
		out = kept
	}

	return out
}

// normalizeTrade fills display placeholders and derives totalValue when the
// source omits it.
func normalizeTrade(r dataapi.Trade) Trade {
	totalValue := r.TotalValue
	if totalValue == 0 {
		totalValue = r.Size * r.Price
	}

	name := r.Name
	if name == "" {
		name = "Anonymous"
	}
	pseudonym := r.Pseudonym
	if pseudonym == "" {
		pseudonym = "Unknown"
	}

	return Trade{
		ProxyWallet:     r.ProxyWallet,
		Name:            name,
		Pseudonym:       pseudonym,
		Bio:             r.Bio,
		ProfileImage:    r.ProfileImage,
		Side:            r.Side,
		Size:            r.Size,
		Price:           r.Price,
		TotalValue:      totalValue,
		Title:           r.Title,
		Slug:            r.Slug,
		EventSlug:       r.EventSlug,
		Icon:            r.Icon,
		Outcome:         r.Outcome,
		OutcomeIndex:    r.OutcomeIndex,
		TransactionHash: r.TransactionHash,
		Timestamp:       r.Timestamp,
		Asset:           r.Asset,
		ConditionID:     r.ConditionID,
	}
}
