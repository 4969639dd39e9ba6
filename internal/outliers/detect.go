// Package outliers flags markets showing unusual behavior. Four independent
// heuristic detectors run per market; any non-nil result marks the market as
// an outlier.
package outliers

import (
	"fmt"
	"sort"

	"github.com/lloydfonterra/PolyMarks/internal/market"
)

// SignalType identifies the detector that produced a signal.
type SignalType string

const (
	TypeVolumeSpike    SignalType = "volume_spike"
	TypeOddsShift      SignalType = "odds_shift"
	TypeHighConviction SignalType = "high_conviction"
	TypeWhaleActivity  SignalType = "whale_activity"
)

// Confidence is the fixed confidence tier assigned by each detector.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Detection thresholds. Fixed heuristics, not configurable per call.
const (
	volumeSpikeRatio       = 0.20
	oddsShiftMinChange     = 0.15
	convictionMinProb      = 0.85
	convictionMinVolume24h = 50_000
	whaleMinVolume24h      = 100_000
)

// Signal is one heuristic-derived flag with a clamped 0-100 severity.
type Signal struct {
	Type       SignalType `json:"type"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
	Severity   float64    `json:"severity"`
}

// MarketWithOutliers is a market annotated with its detected signals.
type MarketWithOutliers struct {
	market.Market
	Outliers  []Signal `json:"outliers,omitempty"`
	IsOutlier bool     `json:"isOutlier"`
}

// MaxSeverity returns the highest signal severity, or 0 with no signals.
func (m *MarketWithOutliers) MaxSeverity() float64 {
	max := 0.0
	for _, s := range m.Outliers {
		if s.Severity > max {
			max = s.Severity
		}
	}
	return max
}

// TopSignal returns the highest-severity signal; ties keep encounter order.
func (m *MarketWithOutliers) TopSignal() *Signal {
	var top *Signal
	for i := range m.Outliers {
		if top == nil || m.Outliers[i].Severity > top.Severity {
			top = &m.Outliers[i]
		}
	}
	return top
}

// detectVolumeSpike fires when 24h volume exceeds 20% of total volume. A
// market with zero total volume yields no signal rather than a non-finite
// ratio.
func detectVolumeSpike(m *market.Market) *Signal {
	if m.Volume <= 0 {
		return nil
	}

	ratio := m.Volume24h / m.Volume
	if ratio <= volumeSpikeRatio {
		return nil
	}

	return &Signal{
		Type:       TypeVolumeSpike,
		Confidence: ConfidenceHigh,
		Reason:     fmt.Sprintf("Unusual volume surge - %.0f%% of total volume in 24h", ratio*100),
		Severity:   clamp(ratio * 100),
	}
}

// detectOddsShift fires when any outcome moved more than 15 points in 24h.
func detectOddsShift(m *market.Market) *Signal {
	if len(m.Outcomes) == 0 {
		return nil
	}

	maxChange := 0.0
	for _, o := range m.Outcomes {
		change := o.PriceChange24h
		if change < 0 {
			change = -change
		}
		if change > maxChange {
			maxChange = change
		}
	}

	if maxChange <= oddsShiftMinChange {
		return nil
	}

	return &Signal{
		Type:       TypeOddsShift,
		Confidence: ConfidenceHigh,
		Reason:     fmt.Sprintf("Major odds movement - %.0f%% change in 24h", maxChange*100),
		Severity:   clamp(maxChange * 100),
	}
}

// detectHighConviction fires when the leading outcome is above 85% with
// meaningful 24h volume behind it.
func detectHighConviction(m *market.Market) *Signal {
	var top *market.Outcome
	for i := range m.Outcomes {
		if top == nil || m.Outcomes[i].Probability > top.Probability {
			top = &m.Outcomes[i]
		}
	}

	if top == nil || top.Probability <= convictionMinProb || m.Volume24h <= convictionMinVolume24h {
		return nil
	}

	return &Signal{
		Type:       TypeHighConviction,
		Confidence: ConfidenceMedium,
		Reason:     fmt.Sprintf("Strong market consensus - %.0f%% probability", top.Probability*100),
		Severity:   clamp(top.Probability * 100),
	}
}

// detectWhaleActivity fires on very high 24h volume. This is a market-level
// heuristic; per-trade whale sentiment lives in the whales package.
func detectWhaleActivity(m *market.Market) *Signal {
	if m.Volume24h <= whaleMinVolume24h {
		return nil
	}

	return &Signal{
		Type:       TypeWhaleActivity,
		Confidence: ConfidenceMedium,
		Reason:     fmt.Sprintf("High activity - $%.0fK in 24h", m.Volume24h/1000),
		Severity:   clamp(m.Volume24h / 1000),
	}
}

// AnalyzeMarket runs every detector against the market's base fields and
// collects the signals that fired. Re-analyzing an already-analyzed market
// derives the same signal set.
func AnalyzeMarket(m market.Market) MarketWithOutliers {
	var signals []Signal

	for _, detect := range []func(*market.Market) *Signal{
		detectVolumeSpike,
		detectOddsShift,
		detectHighConviction,
		detectWhaleActivity,
	} {
		if s := detect(&m); s != nil {
			signals = append(signals, *s)
		}
	}

	return MarketWithOutliers{
		Market:    m,
		Outliers:  signals,
		IsOutlier: len(signals) > 0,
	}
}

// DetectOutliers analyzes all markets and returns only the outliers, sorted
// descending by each market's maximum signal severity. The sort is stable, so
// severity ties retain input order.
func DetectOutliers(markets []market.Market) []MarketWithOutliers {
	var out []MarketWithOutliers
	for _, m := range markets {
		analyzed := AnalyzeMarket(m)
		if analyzed.IsOutlier {
			out = append(out, analyzed)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MaxSeverity() > out[j].MaxSeverity()
	})

	return out
}

func clamp(severity float64) float64 {
	if severity > 100 {
		return 100
	}
	if severity < 0 {
		return 0
	}
	return severity
}
