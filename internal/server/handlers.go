package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/lloydfonterra/PolyMarks/internal/market"
	"github.com/lloydfonterra/PolyMarks/internal/outliers"
	"github.com/lloydfonterra/PolyMarks/internal/whales"
	"github.com/sirupsen/logrus"
)

const featuredMarketCount = 6

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// handleMarkets serves the filtered, sorted market list.
//
// Query parameters: search, category, minLiquidity, closingTime, sortBy, limit.
func (s *Server) handleMarkets(w http.ResponseWriter, r *http.Request) {
	markets, fetchedAt := s.store.Markets()

	filters := market.Filters{
		Search:      r.URL.Query().Get("search"),
		Category:    r.URL.Query().Get("category"),
		ClosingTime: market.ClosingWindow(r.URL.Query().Get("closingTime")),
	}
	if raw := r.URL.Query().Get("minLiquidity"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "minLiquidity must be a number")
			return
		}
		filters.MinLiquidity = v
	}

	markets = market.ApplyFilters(markets, filters)

	if sortBy := r.URL.Query().Get("sortBy"); sortBy != "" {
		markets = market.SortMarkets(markets, market.SortKey(sortBy))
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		if limit < len(markets) {
			markets = markets[:limit]
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"markets":   markets,
		"count":     len(markets),
		"fetchedAt": fetchedAt,
	})
}

// handleFeaturedMarkets serves the top markets by total volume.
func (s *Server) handleFeaturedMarkets(w http.ResponseWriter, r *http.Request) {
	markets, fetchedAt := s.store.Markets()
	markets = market.SortMarkets(markets, market.SortVolume)
	if len(markets) > featuredMarketCount {
		markets = markets[:featuredMarketCount]
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"markets":   markets,
		"count":     len(markets),
		"fetchedAt": fetchedAt,
	})
}

// handleMarket serves a single market with its outlier analysis and a
// referral-tagged Polymarket link.
func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	m, ok := s.store.MarketByID(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "market not found")
		return
	}

	analyzed := outliers.AnalyzeMarket(m)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"market":      analyzed,
		"referralUrl": s.referrals.URL(m.ID, nil),
	})
}

// handleMarketWhales recomputes the whale sentiment summary for one market
// from the live trade feed.
func (s *Server) handleMarketWhales(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	m, ok := s.store.MarketByID(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "market not found")
		return
	}

	var implied *float64
	if p, ok := m.ImpliedProbability(); ok {
		implied = &p
	}

	activity := s.whaleSvc.MarketWhaleActivity(r.Context(), m.ID, implied)
	if activity == nil {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"marketId": m.ID,
			"activity": nil,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"marketId": m.ID,
		"activity": activity,
	})
}

// handleOutliers serves the markets that triggered at least one outlier
// signal, ordered by severity.
func (s *Server) handleOutliers(w http.ResponseWriter, r *http.Request) {
	markets, fetchedAt := s.store.Markets()
	found := outliers.DetectOutliers(markets)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"outliers":  found,
		"count":     len(found),
		"fetchedAt": fetchedAt,
	})
}

// handleTrades serves the whale trade snapshot, optionally filtered.
//
// Query parameters: side, timeRange, minAmount.
func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	trades, fetchedAt := s.store.Trades()

	filters := whales.TradeFilters{
		Side:      r.URL.Query().Get("side"),
		TimeRange: whales.TimeRange(r.URL.Query().Get("timeRange")),
	}
	if raw := r.URL.Query().Get("minAmount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "minAmount must be a number")
			return
		}
		filters.MinAmount = v
	}

	trades = whales.FilterTrades(trades, filters)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"trades":    trades,
		"count":     len(trades),
		"fetchedAt": fetchedAt,
	})
}

// handleWallet looks up a Solana wallet's balance and reputation tier.
func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	if !s.tracker.Available() {
		s.writeError(w, http.StatusServiceUnavailable, "wallet tracking is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	wallet := s.tracker.TrackWallet(ctx, address)
	if wallet == nil {
		s.log.WithFields(logrus.Fields{"address": address}).Debug("Wallet lookup returned nothing")
		s.writeError(w, http.StatusNotFound, "wallet not found or lookup failed")
		return
	}

	s.writeJSON(w, http.StatusOK, wallet)
}
