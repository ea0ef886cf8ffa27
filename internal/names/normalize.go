// Package names canonicalizes member names so that rows from different
// sources ("Linnemann, Dr. Carsten" vs "Carsten Linnemann") meet on one key.
package names

import (
	"regexp"
	"strings"
)

// Most specific first; "Prof. Dr. med." would otherwise leave "med." behind.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bprof\.?\s+dr\.?\s+med\.?\s+`),
	regexp.MustCompile(`(?i)\bprof\.?\s+dr\.?\s+`),
	regexp.MustCompile(`(?i)\bdr\.?\s+med\.?\s+`),
	regexp.MustCompile(`(?i)\bprof\.?\s+`),
	regexp.MustCompile(`(?i)\bdr\.?\s+`),
}

// Normalize strips academic titles and collapses whitespace.
// The result is a fixpoint: Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	out := collapse(name)
	for {
		prev := out
		for _, re := range titlePatterns {
			out = re.ReplaceAllString(out, " ")
		}
		if out == prev {
			break
		}
	}
	return collapse(out)
}

// Key is the lookup key shared by the contact directory and gender table.
func Key(name string) string {
	return strings.ToLower(Normalize(name))
}

// Reorder turns "Last, First" into "First Last". ok is false when the
// name carries no comma.
func Reorder(normalized string) (string, bool) {
	last, first, ok := strings.Cut(normalized, ",")
	if !ok {
		return normalized, false
	}
	return collapse(first + " " + last), true
}

// FirstName returns the lowercased given name, or "" when there is none.
func FirstName(name string) string {
	n := Normalize(name)
	if _, first, ok := strings.Cut(n, ","); ok {
		n = first
	}
	f := strings.Fields(n)
	if len(f) == 0 {
		return ""
	}
	return strings.ToLower(f[0])
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
