package constituency

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var (
	// En and em dashes always separate parts; a hyphen only when spaced,
	// so "Berlin-Mitte" stays one part.
	partSeparator = regexp.MustCompile(`\s*[–—]\s*|\s+-\s+`)
	romanSuffix   = regexp.MustCompile(`\s+[IVX]+$`)
	romanWord     = regexp.MustCompile(`^[IVX]+$`)
	parenthetical = regexp.MustCompile(`\s*\(.*?\)`)
)

const minKeywordRunes = 3

const trimPunct = ",.;:/"

var stopWords = map[string]struct{}{
	"und": {}, "der": {}, "die": {}, "das": {}, "den": {}, "dem": {}, "des": {},
	"bei": {}, "vor": {}, "zum": {}, "zur": {}, "kreis": {}, "landkreis": {},
	"stadt": {}, "land": {}, "nord": {}, "süd": {}, "ost": {}, "west": {},
	"region": {}, "oberer": {}, "unterer": {},
}

// Fold is the case folding applied to keywords and to every locality
// matched against them.
func Fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// Keywords derives the city keywords of a constituency display name.
// "Frankfurt am Main I" yields "frankfurt am main", "frankfurt" and "main";
// "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost" yields the
// district names and "berlin".
func Keywords(displayName string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(s string) {
		s = strings.Trim(s, trimPunct)
		if utf8.RuneCountInString(s) < minKeywordRunes {
			return
		}
		if _, stop := stopWords[s]; stop {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, part := range partSeparator.Split(displayName, -1) {
		part = parenthetical.ReplaceAllString(part, "")
		part = romanSuffix.ReplaceAllString(strings.TrimSpace(part), "")
		if strings.TrimSpace(part) == "" {
			continue
		}
		add(Fold(part))
		for _, w := range strings.Fields(part) {
			if romanWord.MatchString(w) {
				continue
			}
			w = Fold(w)
			add(w)
			if strings.Contains(w, "-") {
				for _, piece := range strings.Split(w, "-") {
					add(piece)
				}
			}
		}
	}
	return out
}
