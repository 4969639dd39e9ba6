package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lloydfonterra/PolyMarks/internal/config"
	"github.com/lloydfonterra/PolyMarks/internal/market"
	"github.com/lloydfonterra/PolyMarks/internal/polymarket/dataapi"
	"github.com/lloydfonterra/PolyMarks/internal/referral"
	"github.com/lloydfonterra/PolyMarks/internal/snapshot"
	"github.com/lloydfonterra/PolyMarks/internal/solana"
	"github.com/lloydfonterra/PolyMarks/internal/wallets"
	"github.com/lloydfonterra/PolyMarks/internal/whales"
	"github.com/sirupsen/logrus"
)

func newTestServer(t *testing.T) (*Server, *snapshot.Store) {
	t.Helper()

	cfg := &config.Config{
		GammaAPIBaseURL:     "https://gamma-api.polymarket.com",
		DataAPIBaseURL:      "https://data-api.polymarket.com",
		WhaleMinTradeUSD:    1000,
		WhaleTradeLimit:     200,
		WalletLookupWorkers: 1,
		ReferralSource:      "polymarks",
		HTTPPort:            0,
	}

	log := logrus.New()
	store := snapshot.New()
	whaleSvc := whales.NewService(cfg, dataapi.NewClient(cfg), log)
	tracker := wallets.NewTracker(cfg, solana.NewClient(cfg), log)
	referrals := referral.NewGenerator(cfg.ReferralSource)

	return New(cfg, store, whaleSvc, tracker, referrals, log), store
}

func seedMarkets(store *snapshot.Store) {
	store.SetMarkets([]market.Market{
		{
			ID:        "election-2028",
			Question:  "Who wins the election?",
			Category:  market.Category{ID: "politics", Name: "Politics"},
			Volume:    500000,
			Volume24h: 150000, // volume spike and whale activity
			Liquidity: 90000,
			EndDate:   time.Now().Add(20 * 24 * time.Hour),
			Active:    true,
		},
		{
			ID:        "quiet-market",
			Question:  "A quiet market about nothing in particular",
			Category:  market.Category{ID: "other", Name: "Other"},
			Volume:    10000,
			Volume24h: 500,
			Liquidity: 2000,
			EndDate:   time.Now().Add(90 * 24 * time.Hour),
			Active:    true,
		},
	})
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestHealthAndReadiness(t *testing.T) {
	s, store := newTestServer(t)

	if rec := doRequest(t, s, "/health"); rec.Code != http.StatusOK {
		t.Errorf("/health: got %d, want 200", rec.Code)
	}

	if rec := doRequest(t, s, "/ready"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("/ready before first fetch: got %d, want 503", rec.Code)
	}

	store.SetMarkets(nil)
	if rec := doRequest(t, s, "/ready"); rec.Code != http.StatusOK {
		t.Errorf("/ready after first fetch: got %d, want 200", rec.Code)
	}
}

func TestHandleMarkets(t *testing.T) {
	s, store := newTestServer(t)
	seedMarkets(store)

	rec := doRequest(t, s, "/api/markets")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 2 {
		t.Errorf("count: got %v, want 2", body["count"])
	}

	rec = doRequest(t, s, "/api/markets?search=election")
	body = decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("search count: got %v, want 1", body["count"])
	}

	rec = doRequest(t, s, "/api/markets?minLiquidity=50000")
	body = decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("liquidity count: got %v, want 1", body["count"])
	}

	rec = doRequest(t, s, "/api/markets?limit=1&sortBy=volume")
	body = decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("limited count: got %v, want 1", body["count"])
	}

	if rec := doRequest(t, s, "/api/markets?minLiquidity=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad minLiquidity: got %d, want 400", rec.Code)
	}
	if rec := doRequest(t, s, "/api/markets?limit=-1"); rec.Code != http.StatusBadRequest {
		t.Errorf("negative limit: got %d, want 400", rec.Code)
	}
}

func TestHandleFeaturedMarkets(t *testing.T) {
	s, store := newTestServer(t)

	var markets []market.Market
	for i := 0; i < 10; i++ {
		markets = append(markets, market.Market{
			ID:     string(rune('a' + i)),
			Volume: float64(i * 1000),
		})
	}
	store.SetMarkets(markets)

	rec := doRequest(t, s, "/api/markets/featured")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 6 {
		t.Errorf("featured count: got %v, want 6", body["count"])
	}
}

func TestHandleMarket(t *testing.T) {
	s, store := newTestServer(t)
	seedMarkets(store)

	rec := doRequest(t, s, "/api/markets/election-2028")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)

	referralURL, _ := body["referralUrl"].(string)
	if !referral.IsPolymarketURL(referralURL) {
		t.Errorf("referralUrl should point at the venue, got '%s'", referralURL)
	}

	m, _ := body["market"].(map[string]interface{})
	if m["isOutlier"] != true {
		t.Errorf("high-activity market should carry outlier analysis: %v", m["isOutlier"])
	}

	if rec := doRequest(t, s, "/api/markets/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown market: got %d, want 404", rec.Code)
	}
}

func TestHandleOutliers(t *testing.T) {
	s, store := newTestServer(t)
	seedMarkets(store)

	rec := doRequest(t, s, "/api/outliers")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("outlier count: got %v, want 1 (only the hot market)", body["count"])
	}
}

func TestHandleTrades(t *testing.T) {
	s, store := newTestServer(t)
	store.SetTrades([]whales.Trade{
		{TransactionHash: "0x1", Side: "BUY", TotalValue: 5000, Timestamp: time.Now().Unix()},
		{TransactionHash: "0x2", Side: "SELL", TotalValue: 20000, Timestamp: time.Now().Unix()},
	})

	rec := doRequest(t, s, "/api/trades")
	body := decodeBody(t, rec)
	if body["count"].(float64) != 2 {
		t.Errorf("count: got %v, want 2", body["count"])
	}

	rec = doRequest(t, s, "/api/trades?side=BUY")
	body = decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("side filter count: got %v, want 1", body["count"])
	}

	rec = doRequest(t, s, "/api/trades?minAmount=10000")
	body = decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("amount filter count: got %v, want 1", body["count"])
	}

	if rec := doRequest(t, s, "/api/trades?minAmount=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad minAmount: got %d, want 400", rec.Code)
	}
}

func TestHandleWalletUnconfigured(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, "/api/wallets/7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("no RPC configured: got %d, want 503", rec.Code)
	}
}
