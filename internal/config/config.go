package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lloydfonterra/PolyMarks/internal/secrets"
)

// Config holds all application configuration
type Config struct {
	// Environment
	Environment string

	// Gamma API (markets)
	GammaAPIBaseURL  string
	MarketFetchLimit int

	// Data API (whale trades)
	DataAPIBaseURL string

	// Helius RPC (Solana wallet lookups)
	HeliusRPCURL string

	// Whale thresholds
	WhaleMinTradeUSD float64 // USD floor for the whale trade feed
	WhaleTradeLimit  int     // Cap on trades considered per market
	AlertMinTradeUSD float64 // Floor for alert notifications

	// Rate limits (requests per second)
	GammaAPIMarketsRPS float64
	DataAPITradesRPS   float64
	HeliusRPS          float64

	// Worker pool
	WalletLookupWorkers int

	// Polling
	MarketsPollInterval time.Duration
	TradesPollInterval  time.Duration

	// Referral
	ReferralSource string

	// Alerts
	AlertMode         string // log, discord, smtp (comma-separated)
	DiscordWebhookURL string
	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPassword      string
	SMTPFrom          string
	SMTPTo            []string

	// HTTP server (API + health + metrics)
	HTTPPort int
}

// Load reads configuration from environment variables, with fallback to a
// local .env file for development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:         getEnv("ENVIRONMENT", "production"),
		GammaAPIBaseURL:     getEnv("GAMMA_API_BASE_URL", "https://gamma-api.polymarket.com"),
		MarketFetchLimit:    getEnvInt("MARKET_FETCH_LIMIT", 500),
		DataAPIBaseURL:      getEnv("DATA_API_BASE_URL", "https://data-api.polymarket.com"),
		HeliusRPCURL:        secrets.GetOptionalSecret("HELIUS_RPC_URL", ""),
		WhaleMinTradeUSD:    getEnvFloat("WHALE_MIN_TRADE_USD", 1000.0),
		WhaleTradeLimit:     getEnvInt("WHALE_TRADE_LIMIT", 200),
		AlertMinTradeUSD:    getEnvFloat("ALERT_MIN_TRADE_USD", 10000.0),
		GammaAPIMarketsRPS:  getEnvFloat("GAMMA_API_MARKETS_RPS", 5.0),
		DataAPITradesRPS:    getEnvFloat("DATA_API_TRADES_RPS", 2.0),
		HeliusRPS:           getEnvFloat("HELIUS_RPS", 10.0),
		WalletLookupWorkers: getEnvInt("WALLET_LOOKUP_WORKERS", 5),
		MarketsPollInterval: time.Duration(getEnvInt("MARKETS_POLL_INTERVAL_SEC", 60)) * time.Second,
		TradesPollInterval:  time.Duration(getEnvInt("TRADES_POLL_INTERVAL_SEC", 20)) * time.Second,
		ReferralSource:      getEnv("REFERRAL_SOURCE", "polymarks"),
		AlertMode:           getEnv("ALERT_MODE", "log"),
		DiscordWebhookURL:   secrets.GetOptionalSecret("DISCORD_WEBHOOK_URL", ""),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPassword:        secrets.GetOptionalSecret("SMTP_PASSWORD", ""),
		SMTPFrom:            getEnv("SMTP_FROM", "polymarks@example.com"),
		HTTPPort:            getEnvInt("HTTP_PORT", 8080),
	}

	if smtpTo := getEnv("SMTP_TO", ""); smtpTo != "" {
		cfg.SMTPTo = parseCSV(smtpTo)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	if c.GammaAPIBaseURL == "" {
		return fmt.Errorf("GAMMA_API_BASE_URL is required")
	}
	if c.DataAPIBaseURL == "" {
		return fmt.Errorf("DATA_API_BASE_URL is required")
	}
	if c.WhaleMinTradeUSD < 0 {
		return fmt.Errorf("WHALE_MIN_TRADE_USD must be non-negative")
	}
	if c.WhaleTradeLimit <= 0 {
		return fmt.Errorf("WHALE_TRADE_LIMIT must be positive")
	}

	hasDiscord := false
	hasSMTP := false
	for _, mode := range parseCSV(c.AlertMode) {
		switch mode {
		case "log":
		case "discord":
			hasDiscord = true
		case "smtp":
			hasSMTP = true
		default:
			return fmt.Errorf("invalid ALERT_MODE value: %s (valid values: log, discord, smtp)", mode)
		}
	}

	if hasDiscord && c.DiscordWebhookURL == "" {
		return fmt.Errorf("DISCORD_WEBHOOK_URL is required when discord is in ALERT_MODE")
	}
	if hasSMTP && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required when smtp is in ALERT_MODE")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func parseCSV(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
