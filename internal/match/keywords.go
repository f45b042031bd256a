// Package match holds the pure text heuristics the filter stage runs against
// aggregated records: keyword relevance, experience extraction and matching,
// and location acceptance. Each function lowercases its own input, so callers
// pass normalized text without case-folding first. Everything here is
// substring matching over free text; precision is traded for recall on
// purpose, because a dropped good posting is worse than a kept mediocre one.
package match

import "strings"

// fallbackTokens are coarse discipline markers accepted even when none of the
// configured role phrases appear. They keep postings that describe the field
// without naming an exact title.
var fallbackTokens = []string{"devops", "cloud", "sre", "site reliability"}

// Relevant reports whether text mentions any configured role phrase or one of
// the fallback discipline tokens.
func Relevant(text string, keywords []string) bool {
	t := strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(t, kw) {
			return true
		}
	}
	for _, tok := range fallbackTokens {
		if strings.Contains(t, tok) {
			return true
		}
	}
	return false
}
