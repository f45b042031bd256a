package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// applyEnv overrides file settings from JOBDIGEST_* environment variables. A
// .env file in the working directory is loaded first, so local runs keep the
// mailbox and recipient out of the committed config file. Empty variables
// are ignored rather than clearing values.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := getenv("JOBDIGEST_SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := getenv("JOBDIGEST_SMTP_USER"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := getenv("JOBDIGEST_EMAIL_FROM"); v != "" {
		cfg.SMTP.From = v
	}
	if v := getenv("JOBDIGEST_EMAIL_TO"); v != "" {
		cfg.SMTP.To = v
	}
	if v := getenv("JOBDIGEST_SENDER_NAME"); v != "" {
		cfg.SMTP.SenderName = v
	}

	if v := getenv("JOBDIGEST_IMAP_HOST"); v != "" {
		cfg.Sources.Email.IMAPHost = v
	}
	if v := getenv("JOBDIGEST_IMAP_USER"); v != "" {
		cfg.Sources.Email.Username = v
	}
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
