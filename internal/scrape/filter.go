package scrape

import (
	"log"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
	"jobdigest/internal/match"
	"jobdigest/internal/scrape/util"
)

// ShouldKeep decides whether one deduplicated record belongs in the digest.
// Checks run in a fixed order and reason names the first that failed:
// "keyword", "experience" or "location".
func ShouldKeep(cfg config.Config, r domain.JobRecord) (keep bool, reason string) {
	blob := util.CombineText(r.Title, r.Company, r.Location, r.Snippet)

	if !match.Relevant(blob, cfg.Search.Keywords) {
		return false, "keyword"
	}

	if !match.ExtractExperience(blob).Matches(cfg.Band()) {
		return false, "experience"
	}

	loc := r.Location
	if loc == "" {
		loc = r.Snippet
	}
	if !match.AcceptableLocation(loc, cfg.Filters.LocationsAllow) {
		return false, "location"
	}

	return true, ""
}

// FilterRecords applies ShouldKeep to every record in order, logging each
// drop with its reason. Records pass through unmodified.
func FilterRecords(cfg config.Config, records []domain.JobRecord) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, len(records))
	for _, r := range records {
		keep, why := ShouldKeep(cfg, r)
		if !keep {
			log.Printf("[filter] skip (%s) source=%s title=%q link=%s", why, r.Source, r.Title, r.Link)
			continue
		}
		out = append(out, r)
	}
	return out
}
