package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lloydfonterra/PolyMarks/internal/alerts"
	"github.com/lloydfonterra/PolyMarks/internal/config"
	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/lloydfonterra/PolyMarks/internal/outliers"
	"github.com/lloydfonterra/PolyMarks/internal/poller"
	"github.com/lloydfonterra/PolyMarks/internal/polymarket/dataapi"
	"github.com/lloydfonterra/PolyMarks/internal/polymarket/gammaapi"
	"github.com/lloydfonterra/PolyMarks/internal/referral"
	"github.com/lloydfonterra/PolyMarks/internal/server"
	"github.com/lloydfonterra/PolyMarks/internal/snapshot"
	"github.com/lloydfonterra/PolyMarks/internal/solana"
	"github.com/lloydfonterra/PolyMarks/internal/wallets"
	"github.com/lloydfonterra/PolyMarks/internal/whales"
	"github.com/sirupsen/logrus"
)

// Cap on trades pulled per cycle for the shared trade snapshot.
const tradeSnapshotLimit = 50

func main() {
	// Initialize logger
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	log.Info("Starting polymarks service...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	log.WithFields(logrus.Fields{
		"environment":         cfg.Environment,
		"market_fetch_limit":  cfg.MarketFetchLimit,
		"whale_min_trade_usd": cfg.WhaleMinTradeUSD,
		"alert_min_trade_usd": cfg.AlertMinTradeUSD,
		"alert_mode":          cfg.AlertMode,
		"http_port":           cfg.HTTPPort,
	}).Info("Configuration loaded")

	// Initialize API clients
	gammaClient := gammaapi.NewClient(cfg, log)
	dataClient := dataapi.NewClient(cfg)
	heliusClient := solana.NewClient(cfg)

	log.WithField("helius_enabled", heliusClient.Available()).Info("API clients initialized")

	// Initialize services
	whaleSvc := whales.NewService(cfg, dataClient, log)
	tracker := wallets.NewTracker(cfg, heliusClient, log)
	referrals := referral.NewGenerator(cfg.ReferralSource)
	store := snapshot.New()

	// Initialize alert pipeline
	alertSender := createAlertSender(cfg, log)
	watcher := alerts.NewWatcher(alertSender, cfg.AlertMode, cfg.AlertMinTradeUSD, cfg.Environment, referrals, log)

	log.WithField("alert_mode", cfg.AlertMode).Info("Alert sender initialized")

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start polling loops
	p := poller.New(log)

	p.Add("markets", cfg.MarketsPollInterval, func(ctx context.Context) error {
		markets, err := gammaClient.GetActiveMarkets(ctx, cfg.MarketFetchLimit)
		if err != nil {
			return err
		}
		store.SetMarkets(markets)
		metrics.SnapshotMarkets.Set(float64(len(markets)))

		found := outliers.DetectOutliers(markets)
		var types []string
		for _, o := range found {
			for _, sig := range o.Outliers {
				types = append(types, string(sig.Type))
			}
		}
		metrics.RecordOutlierSignals(types)

		log.WithFields(logrus.Fields{
			"markets":  len(markets),
			"outliers": len(found),
		}).Info("Market snapshot refreshed")
		return nil
	})

	p.Add("trades", cfg.TradesPollInterval, func(ctx context.Context) error {
		trades, err := whaleSvc.WhaleTrades(ctx, tradeSnapshotLimit, whales.TradeFilters{})
		if err != nil {
			return err
		}
		store.SetTrades(trades)
		metrics.SnapshotTrades.Set(float64(len(trades)))

		watcher.Observe(ctx, trades)
		return nil
	})

	p.Start(ctx)

	// Start HTTP server (API + health + metrics)
	srv := server.New(cfg, store, whaleSvc, tracker, referrals, log)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("HTTP server failed")
		}
	}()

	sig := <-sigChan
	log.WithField("signal", sig).Info("Received shutdown signal")

	cancel()
	p.Stop()
	log.Info("Graceful shutdown complete")
}

func createAlertSender(cfg *config.Config, log *logrus.Logger) alerts.Sender {
	var modes []string
	for _, mode := range strings.Split(cfg.AlertMode, ",") {
		if trimmed := strings.TrimSpace(mode); trimmed != "" {
			modes = append(modes, trimmed)
		}
	}

	var senders []alerts.Sender
	for _, mode := range modes {
		switch mode {
		case "log":
			senders = append(senders, alerts.NewLogSender(log))
		case "discord":
			if cfg.DiscordWebhookURL == "" {
				log.Warn("Discord mode specified but DISCORD_WEBHOOK_URL not set")
				continue
			}
			senders = append(senders, alerts.NewDiscordSender(cfg.DiscordWebhookURL))
		case "smtp":
			if cfg.SMTPHost == "" {
				log.Warn("SMTP mode specified but SMTP_HOST not set")
				continue
			}
			senders = append(senders, alerts.NewSMTPSender(
				cfg.SMTPHost,
				cfg.SMTPPort,
				cfg.SMTPUser,
				cfg.SMTPPassword,
				cfg.SMTPFrom,
				cfg.SMTPTo,
			))
		default:
			log.WithField("mode", mode).Warn("Unknown alert mode, skipping")
		}
	}

	if len(senders) == 0 {
		log.Warn("No valid alert senders configured, using log")
		return alerts.NewLogSender(log)
	}
	if len(senders) == 1 {
		return senders[0]
	}
	return alerts.NewMultiSender(senders...)
}
