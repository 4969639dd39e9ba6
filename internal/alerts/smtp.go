package alerts

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
)

// SMTPSender sends alerts via email
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
	to       []string
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(host string, port int, user, password, from string, to []string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		to:       to,
	}
}

// Send sends the alert via email
func (s *SMTPSender) Send(ctx context.Context, payload *Payload) error {
	if len(s.to) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	subject := fmt.Sprintf("Whale %s: $%.2f on %s", payload.Side, payload.TotalValue, payload.MarketTitle)
	body := s.buildEmailBody(payload)

	message := fmt.Sprintf("From: %s\r\n", s.from)
	message += fmt.Sprintf("To: %s\r\n", s.to[0])
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "Content-Type: text/plain; charset=UTF-8\r\n"
	message += "\r\n"
	message += body

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, s.to, []byte(message)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

func (s *SMTPSender) buildEmailBody(payload *Payload) string {
	body := "POLYMARKS WHALE ALERT\n"
	body += "═══════════════════════════════════════\n\n"
	body += "TRADE DETAILS\n"
	body += "─────────────────────────────────────\n"
	body += fmt.Sprintf("Total:          $%.2f\n", payload.TotalValue)
	body += fmt.Sprintf("Side:           %s %s\n", payload.Side, payload.Outcome)
	body += fmt.Sprintf("Shares:         %.0f\n", payload.Size)
	body += fmt.Sprintf("Price:          %.2f\n", payload.Price)
	body += fmt.Sprintf("Market:         %s\n", payload.MarketTitle)
	body += fmt.Sprintf("Market URL:     %s\n\n", payload.MarketURL)
	body += "TRADER\n"
	body += "─────────────────────────────────────\n"
	body += fmt.Sprintf("Name:           %s\n", payload.TraderName)
	body += fmt.Sprintf("Wallet:         %s\n\n", payload.WalletAddress)
	body += "TRANSACTION\n"
	body += "─────────────────────────────────────\n"
	body += fmt.Sprintf("Hash:           %s\n", payload.TransactionHash)
	body += fmt.Sprintf("Time:           %s\n\n", payload.Timestamp.Format(time.RFC3339))
	body += "═══════════════════════════════════════\n"
	body += fmt.Sprintf("Environment: %s\n", payload.Environment)
	body += fmt.Sprintf("Generated: %s\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))

	return body
}
