package alerts

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender sends alerts to the logger
type LogSender struct {
	log *logrus.Logger
}

// NewLogSender creates a new log sender
func NewLogSender(log *logrus.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the alert
func (s *LogSender) Send(ctx context.Context, payload *Payload) error {
	s.log.WithFields(logrus.Fields{
		"wallet":      payload.WalletShort,
		"trader":      payload.TraderName,
		"market":      payload.MarketTitle,
		"side":        payload.Side,
		"outcome":     payload.Outcome,
		"total_value": payload.TotalValue,
		"price":       payload.Price,
		"tx_hash":     payload.TxHashShort,
	}).Info("Whale trade alert")
	return nil
}
