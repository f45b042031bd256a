package main

import (
	"context"
	"errors"
	"log"
	"time"

	"jobdigest/internal/config"
	"jobdigest/internal/digest"
	"jobdigest/internal/notify"
	"jobdigest/internal/outbox"
	"jobdigest/internal/secrets"
)

// deliver emails the digest, falling back to the outbox when SMTP is not
// configured, the password cannot be resolved, or the send itself fails.
func deliver(ctx context.Context, cfg config.Config, dataDir string, d *digest.Rendered, started time.Time, jobCount int) {
	if !cfg.SMTPEnabled() {
		saveToOutbox(ctx, dataDir, d, started, jobCount, errors.New("smtp not configured"))
		return
	}

	password, err := secrets.SMTPPassword(cfg.SMTP.Username, cfg.SMTP.Host)
	if err != nil {
		log.Printf("[notify] smtp password unavailable: %v", err)
		saveToOutbox(ctx, dataDir, d, started, jobCount, err)
		return
	}

	sender := notify.NewSender(notify.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   password,
		From:       cfg.SMTP.From,
		To:         cfg.SMTP.To,
		SenderName: cfg.SMTP.SenderName,
	})
	if err := sender.Send(d); err != nil {
		log.Printf("[notify] delivery failed: %v", err)
		saveToOutbox(ctx, dataDir, d, started, jobCount, err)
		return
	}
	log.Printf("[notify] digest emailed to %s", cfg.SMTP.To)
}

func saveToOutbox(ctx context.Context, dataDir string, d *digest.Rendered, started time.Time, jobCount int, cause error) {
	box, err := outbox.Open(dataDir)
	if err != nil {
		log.Printf("[outbox] open failed: %v", err)
		return
	}
	defer box.Close()

	path, err := box.Save(ctx, d, started, jobCount, cause)
	if err != nil {
		log.Printf("[outbox] save failed: %v", err)
		return
	}
	log.Printf("[outbox] digest kept at %s (%v)", path, cause)
}
