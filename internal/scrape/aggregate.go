package scrape

import (
	"strings"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

// dedupKey is a record's aggregation identity: the canonicalized link, or
// the bare title when the source produced no link at all. Empty means the
// record is unidentifiable.
func dedupKey(r domain.JobRecord) string {
	if link := strings.TrimSpace(r.Link); link != "" {
		return util.CanonicalURL(link)
	}
	return strings.TrimSpace(r.Title)
}

// Dedupe keeps the first record seen for each key and drops unidentifiable
// records. Input order is preserved among survivors, so whichever source
// came earlier in the query list owns a contested posting. Two different
// URLs for the same real job stay distinct; there is no fuzzy matching.
func Dedupe(records []domain.JobRecord) []domain.JobRecord {
	seen := make(map[string]bool, len(records))
	out := make([]domain.JobRecord, 0, len(records))
	for _, r := range records {
		key := dedupKey(r)
		if key == "" {
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
