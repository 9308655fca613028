// Package normalize canonicalizes user supplied names before they are stored
// or compared.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Name trims surrounding whitespace, composes the string to NFC and lower-cases it,
// so "Salt", " salt " and "SALT" all become "salt".
func Name(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	// Caser is stateful, so one is created per call.
	return cases.Lower(language.Und).String(s)
}

// Names normalizes every name and drops empty results and duplicates,
// keeping the first occurrence order.
func Names(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = Name(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Email trims and lower-cases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
