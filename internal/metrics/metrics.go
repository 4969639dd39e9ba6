package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Poll cycle metrics
	PollCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymarks_poll_cycles_total",
			Help: "Total number of poll cycles per resource",
		},
		[]string{"resource", "status"}, // markets/trades, success/error/skipped
	)

	PollCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "polymarks_poll_cycle_duration_seconds",
			Help:    "Duration of a fetch-then-recompute poll cycle",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"resource"},
	)

	// Snapshot metrics
	SnapshotMarkets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "polymarks_snapshot_markets",
			Help: "Number of normalized markets in the current snapshot",
		},
	)

	SnapshotTrades = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "polymarks_snapshot_whale_trades",
			Help: "Number of whale trades in the current snapshot",
		},
	)

	MarketsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "polymarks_markets_dropped_total",
			Help: "Total number of raw market records dropped as malformed",
		},
	)

	// Detection metrics
	OutlierSignals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymarks_outlier_signals_total",
			Help: "Total number of outlier signals detected",
		},
		[]string{"type"}, // volume_spike, odds_shift, high_conviction, whale_activity
	)

	SentimentCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymarks_sentiment_calculations_total",
			Help: "Total number of whale sentiment calculations",
		},
		[]string{"result"}, // bullish/bearish/neutral/no_data
	)

	// Alert metrics
	AlertsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymarks_alerts_sent_total",
			Help: "Total number of whale alerts sent",
		},
		[]string{"status", "type"}, // success/error, discord/smtp/log
	)

	// API metrics
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymarks_api_requests_total",
			Help: "Total number of outbound API requests",
		},
		[]string{"api", "endpoint", "status"}, // gamma/data/helius
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "polymarks_api_request_duration_seconds",
			Help:    "Duration of outbound API requests",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"api", "endpoint"},
	)

	// Wallet tracker metrics
	WalletLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymarks_wallet_lookups_total",
			Help: "Total number of wallet balance lookups",
		},
		[]string{"status"}, // success/error/invalid
	)

	// System health
	HealthChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymarks_health_checks_total",
			Help: "Total number of health check requests",
		},
		[]string{"status"},
	)
)

// RecordPollCycle records the outcome of one poll cycle for a resource
func RecordPollCycle(resource string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	PollCycles.WithLabelValues(resource, status).Inc()
	PollCycleDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// RecordPollSkipped records a poll tick skipped because a fetch was in flight
func RecordPollSkipped(resource string) {
	PollCycles.WithLabelValues(resource, "skipped").Inc()
}

// RecordAPIRequest records outbound API request metrics
func RecordAPIRequest(api, endpoint string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	APIRequests.WithLabelValues(api, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(api, endpoint).Observe(duration.Seconds())
}

// RecordOutlierSignals bumps the per-type signal counters
func RecordOutlierSignals(types []string) {
	for _, t := range types {
		OutlierSignals.WithLabelValues(t).Inc()
	}
}

// RecordSentiment records the result of a sentiment calculation
func RecordSentiment(result string) {
	SentimentCalculations.WithLabelValues(result).Inc()
}

// RecordAlert records alert delivery metrics
func RecordAlert(sendStatus, alertType string) {
	AlertsSent.WithLabelValues(sendStatus, alertType).Inc()
}

// RecordWalletLookup records a wallet balance lookup
func RecordWalletLookup(status string) {
	WalletLookups.WithLabelValues(status).Inc()
}

// RecordHealthCheck records health check status
func RecordHealthCheck(healthy bool) {
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}
	HealthChecks.WithLabelValues(status).Inc()
}
