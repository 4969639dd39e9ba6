// Package server exposes the snapshot and the derived analytics over a JSON
// HTTP API.
package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/lloydfonterra/PolyMarks/internal/config"
	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/referral"
	"github.com/lloydfonterra/PolyMarks/internal/snapshot"
	"github.com/lloydfonterra/PolyMarks/internal/wallets"
	"github.com/lloydfonterra/PolyMarks/internal/whales"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server wires the API handlers to their collaborators.
type Server struct {
	cfg       *config.Config
	store     *snapshot.Store
	whaleSvc  *whales.Service
	tracker   *wallets.Tracker
	referrals *referral.Generator
	log       *logrus.Logger
}

// New creates a Server.
func New(
	cfg *config.Config,
	store *snapshot.Store,
	whaleSvc *whales.Service,
	tracker *wallets.Tracker,
	referrals *referral.Generator,
	log *logrus.Logger,
) *Server {
	return &Server{
		cfg:       cfg,
		store:     store,
		whaleSvc:  whaleSvc,
		tracker:   tracker,
		referrals: referrals,
		log:       log,
	}
}

// Router builds the HTTP handler with logging and CORS middleware.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/markets", s.handleMarkets).Methods("GET")
	api.HandleFunc("/markets/featured", s.handleFeaturedMarkets).Methods("GET")
	api.HandleFunc("/markets/{id}", s.handleMarket).Methods("GET")
	api.HandleFunc("/markets/{id}/whales", s.handleMarketWhales).Methods("GET")
	api.HandleFunc("/outliers", s.handleOutliers).Methods("GET")
	api.HandleFunc("/trades", s.handleTrades).Methods("GET")
	api.HandleFunc("/wallets/{address}", s.handleWallet).Methods("GET")

	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/ready", s.handleReady).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return handlers.CombinedLoggingHandler(os.Stdout, cors(r))
}

// ListenAndServe runs the HTTP server until it fails or is shut down.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	s.log.WithField("addr", addr).Info("Starting HTTP server")
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	metrics.RecordHealthCheck(true)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"healthy"}`)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.store.Ready() {
		metrics.RecordHealthCheck(false)
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"status":"waiting for first market snapshot"}`)
		return
	}
	metrics.RecordHealthCheck(true)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ready"}`)
}
