package config

// Defaults reproduce a useful cloud/devops search for India without any
// config file at all. Every value here loses to an explicit YAML or env
// setting.

var defaultKeywords = []string{
	"DevOps Engineer",
	"Cloud Engineer",
	"Site Reliability Engineer",
	"Platform Engineer",
	"Infrastructure Engineer",
	"AWS Engineer",
	"Azure DevOps Engineer",
	"Kubernetes Engineer",
}

var defaultDomains = []string{
	"careers.google.com",
	"careers.amazon.com",
	"jobs.lever.co",
	"jobs.github.com",
	"netflixjobs.com",
	"careers.microsoft.com",
}

var defaultLocations = []string{"india", "pan india"}

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

func applyDefaults(cfg *Config) {
	if cfg.App.UserAgent == "" {
		cfg.App.UserAgent = defaultUserAgent
	}
	if cfg.App.RequestTimeoutSeconds == 0 {
		cfg.App.RequestTimeoutSeconds = 15
	}
	if cfg.App.PauseSeconds == 0 {
		cfg.App.PauseSeconds = 2
	}
	if cfg.App.MaxConcurrent == 0 {
		cfg.App.MaxConcurrent = 1
	}

	if len(cfg.Search.Keywords) == 0 {
		cfg.Search.Keywords = append([]string(nil), defaultKeywords...)
	}

	if cfg.Filters.MinYears == 0 && cfg.Filters.MaxYears == 0 {
		cfg.Filters.MinYears = 2
		cfg.Filters.MaxYears = 6
	}
	if len(cfg.Filters.LocationsAllow) == 0 {
		cfg.Filters.LocationsAllow = append([]string(nil), defaultLocations...)
	}

	if len(cfg.Sources.SiteSearch.Domains) == 0 {
		cfg.Sources.SiteSearch.Domains = append([]string(nil), defaultDomains...)
	}
	if cfg.Sources.SiteSearch.KeywordLimit == 0 {
		cfg.Sources.SiteSearch.KeywordLimit = 4
	}

	if cfg.Sources.Email.IMAPPort == 0 {
		cfg.Sources.Email.IMAPPort = 993
	}
	if cfg.Sources.Email.Mailbox == "" {
		cfg.Sources.Email.Mailbox = "INBOX"
	}
	if cfg.Sources.Email.MaxMessages == 0 {
		cfg.Sources.Email.MaxMessages = 50
	}

	if cfg.SMTP.Host == "" {
		cfg.SMTP.Host = "smtp.gmail.com"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	if cfg.SMTP.SubjectPrefix == "" {
		cfg.SMTP.SubjectPrefix = "Daily Cloud & DevOps Jobs"
	}
}
