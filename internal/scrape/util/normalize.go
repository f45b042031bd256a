package util

import "strings"

// CleanText collapses every run of whitespace, including newlines, tabs and
// non-breaking spaces, into single spaces and trims the result. Every text
// field an adapter scrapes goes through here before it lands on a record, so
// downstream matching never has to care about source formatting.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// CombineText joins fragments with single spaces and normalizes the result.
// Used to build the one text blob the filter heuristics run against.
func CombineText(parts ...string) string {
	return CleanText(strings.Join(parts, " "))
}
