// Package config loads and validates the digest's configuration. Settings
// come from three layers, each overriding the one before: built-in defaults,
// the YAML file, and JOBDIGEST_* environment variables (a .env file in the
// working directory is honored). Secrets never live here; they come from the
// OS keychain via the secrets package.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"jobdigest/internal/match"
)

type Config struct {
	App struct {
		UserAgent             string  `yaml:"user_agent"`
		RequestTimeoutSeconds int     `yaml:"request_timeout_seconds"`
		PauseSeconds          float64 `yaml:"pause_seconds"`
		MaxConcurrent         int     `yaml:"max_concurrent"`
	} `yaml:"app"`

	Search struct {
		Keywords []string `yaml:"keywords"`
	} `yaml:"search"`

	Filters struct {
		MinYears       int      `yaml:"min_years"`
		MaxYears       int      `yaml:"max_years"`
		LocationsAllow []string `yaml:"locations_allow"`
	} `yaml:"filters"`

	Sources struct {
		Indeed struct {
			Enabled bool `yaml:"enabled"`
		} `yaml:"indeed"`

		Wellfound struct {
			Enabled bool `yaml:"enabled"`
		} `yaml:"wellfound"`

		SiteSearch struct {
			Enabled      bool     `yaml:"enabled"`
			Domains      []string `yaml:"domains"`
			KeywordLimit int      `yaml:"keyword_limit"`
		} `yaml:"site_search"`

		Email struct {
			Enabled     bool     `yaml:"enabled"`
			IMAPHost    string   `yaml:"imap_host"`
			IMAPPort    int      `yaml:"imap_port"`
			Username    string   `yaml:"username"`
			Mailbox     string   `yaml:"mailbox"`
			SubjectAny  []string `yaml:"subject_any"`
			MaxMessages int      `yaml:"max_messages"`
		} `yaml:"email"`
	} `yaml:"sources"`

	SMTP struct {
		Host          string `yaml:"host"`
		Port          int    `yaml:"port"`
		Username      string `yaml:"username"`
		From          string `yaml:"from"`
		To            string `yaml:"to"`
		SenderName    string `yaml:"sender_name"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"smtp"`
}

// Load reads the YAML file at path and applies the env overlay and defaults
// on top.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.App.RequestTimeoutSeconds) * time.Second
}

func (c Config) Pause() time.Duration {
	return time.Duration(c.App.PauseSeconds * float64(time.Second))
}

// Band is the years-of-experience window records are matched against.
func (c Config) Band() match.Band {
	return match.Band{Min: c.Filters.MinYears, Max: c.Filters.MaxYears}
}

// SMTPEnabled reports whether enough of the smtp section is set to attempt
// delivery. There is no enabled flag; an unconfigured transport simply means
// the digest goes to the outbox.
func (c Config) SMTPEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.Username != "" && c.SMTP.To != ""
}
