package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"weekwatch/internal/config"
	"weekwatch/internal/state"
)

// SendEmail sends an email notification via Mailgun with rate limiting.
// Returns nil if notifications are disabled, in dev mode, or rate limited.
func SendEmail(cfg *config.Config, subject, body string) error {
	if !cfg.Notifications.Enabled {
		return nil
	}

	// Skip sending emails in dev mode
	if cfg.Dev {
		log.Printf("DEV MODE: Skipping email send - Subject: %s, Body: %s", subject, body)
		return nil
	}

	// Rate limiting: check if we've sent this type of email recently
	lastSent, exists := state.GetLastEmailTime(subject)
	now := time.Now()
	if exists && now.Sub(lastSent) < config.EmailCooldownMinutes*time.Minute {
		log.Printf("Email rate limited - Subject: %s (last sent %v ago)", subject, now.Sub(lastSent).Round(time.Second))
		return nil
	}
	state.SetLastEmailTime(subject, now)

	from := cfg.Notifications.FromEmail
	to := cfg.Notifications.ToEmail
	log.Printf("Sending email from %s to %s subject %s", from, to, subject)

	mg := mailgun.NewMailgun(cfg.Notifications.Domain, cfg.Notifications.ApiKey)

	mail := mg.NewMessage(from, subject, body, to)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	_, _, err := mg.Send(ctx, mail)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
