package index

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Normalize produces the canonical matching form of text: NFC
// composition followed by Unicode case folding, so "Thème" matches
// "thème" however the input was composed.
func Normalize(s string) string {
	return folder.String(norm.NFC.String(s))
}

// Terms splits a query into normalized, deduplicated search terms.
func Terms(query string) []string {
	fields := strings.Fields(Normalize(query))

	seen := make(map[string]bool, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}
