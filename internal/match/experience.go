package match

import (
	"regexp"
	"strconv"
	"strings"
)

// Band is the configured years-of-experience window a posting must plausibly
// overlap to survive filtering.
type Band struct {
	Min int
	Max int
}

// Range is an experience requirement read out of free text. A nil bound is
// unstated; both nil means the text names no requirement at all.
type Range struct {
	Min *int
	Max *int
}

// Extraction patterns in precedence order. The first pattern that matches
// wins and the rest are not tried; the bare "<N> years" form must come last
// or it would swallow every bounded range.
var experiencePatterns = []struct {
	re        *regexp.Regexp
	interpret func(m []string) Range
}{
	{
		re: regexp.MustCompile(`(\d{1,2})\s*[-–]\s*(\d{1,2})\s*years?`),
		interpret: func(m []string) Range {
			return Range{Min: atoiPtr(m[1]), Max: atoiPtr(m[2])}
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2})\s*\+\s*years?`),
		interpret: func(m []string) Range {
			return Range{Min: atoiPtr(m[1])}
		},
	},
	{
		re: regexp.MustCompile(`minimum\s+of\s+(\d{1,2})\s*years?`),
		interpret: func(m []string) Range {
			return Range{Min: atoiPtr(m[1])}
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2})\s*years?`),
		interpret: func(m []string) Range {
			return Range{Min: atoiPtr(m[1]), Max: atoiPtr(m[1])}
		},
	},
}

// ExtractExperience scans text for an experience requirement written as
// "2-4 years", "3+ years", "minimum of 2 years" or "4 years". Text matching
// none of the forms yields the unstated Range, which Matches never rejects.
func ExtractExperience(text string) Range {
	t := strings.ToLower(text)
	for _, p := range experiencePatterns {
		if m := p.re.FindStringSubmatch(t); m != nil {
			return p.interpret(m)
		}
	}
	return Range{}
}

// Matches reports whether a stated requirement is compatible with the wanted
// band. Unstated requirements pass; many postings simply never say, and
// excluding those would starve the digest.
func (r Range) Matches(band Band) bool {
	switch {
	case r.Min == nil && r.Max == nil:
		return true
	case r.Min != nil && r.Max != nil:
		return !(*r.Max < band.Min || *r.Min > band.Max)
	case r.Min != nil:
		return *r.Min <= band.Max
	default:
		// no extraction pattern currently yields a max-only Range; the rule
		// exists so one added later inherits overlap semantics
		return *r.Max >= band.Min
	}
}

func atoiPtr(s string) *int {
	n, _ := strconv.Atoi(s)
	return &n
}
