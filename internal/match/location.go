package match

import "strings"

// remoteTokens mark a posting as location-agnostic whatever the configured
// regions are.
var remoteTokens = []string{"remote"}

// AcceptableLocation reports whether a location blob is compatible with the
// configured region tokens. Empty text passes: an unknown location must not
// cost a posting its digest slot.
func AcceptableLocation(text string, regions []string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return true
	}
	for _, tok := range remoteTokens {
		if strings.Contains(t, tok) {
			return true
		}
	}
	for _, tok := range regions {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if strings.Contains(t, tok) {
			return true
		}
	}
	return false
}
