package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy of cfg plus everything wrong
// with it. Errors mean the run must not start; warnings mean it will start
// but probably not do what the user hopes.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Search.Keywords = trimList(out.Search.Keywords)
	out.Filters.LocationsAllow = trimList(out.Filters.LocationsAllow)
	out.Sources.SiteSearch.Domains = trimList(out.Sources.SiteSearch.Domains)
	out.Sources.Email.SubjectAny = trimList(out.Sources.Email.SubjectAny)

	if len(out.Search.Keywords) == 0 {
		res.addErr("search.keywords is empty; there is nothing to search for")
	}

	if out.Filters.MinYears < 0 {
		res.addErr("filters.min_years must be >= 0")
	}
	if out.Filters.MaxYears < out.Filters.MinYears {
		res.addErr("filters.max_years (%d) must be >= filters.min_years (%d)",
			out.Filters.MaxYears, out.Filters.MinYears)
	}
	if len(out.Filters.LocationsAllow) == 0 {
		res.addWarn("filters.locations_allow is empty; only remote or unlocated postings will pass")
	}

	if out.App.RequestTimeoutSeconds <= 0 {
		res.addErr("app.request_timeout_seconds must be > 0")
	}
	if out.App.PauseSeconds < 0 {
		res.addErr("app.pause_seconds must be >= 0")
	} else if out.App.PauseSeconds < 1 {
		res.addWarn("app.pause_seconds is very low (%.1f) and may trip rate limits", out.App.PauseSeconds)
	}
	if out.App.MaxConcurrent < 1 {
		res.addErr("app.max_concurrent must be >= 1")
	}

	src := out.Sources
	if !src.Indeed.Enabled && !src.Wellfound.Enabled && !src.SiteSearch.Enabled && !src.Email.Enabled {
		res.addWarn("no sources enabled; the digest will be empty")
	}
	if src.SiteSearch.Enabled && len(out.Sources.SiteSearch.Domains) == 0 {
		res.addWarn("sources.site_search enabled with no domains")
	}

	if src.Email.Enabled {
		if strings.TrimSpace(src.Email.IMAPHost) == "" {
			res.addErr("sources.email.imap_host is required when email is enabled")
		}
		if strings.TrimSpace(src.Email.Username) == "" {
			res.addErr("sources.email.username is required when email is enabled")
		}
	}

	if !out.SMTPEnabled() {
		res.addWarn("smtp is not fully configured; digests will be saved locally instead of emailed")
	}

	return out, res
}
