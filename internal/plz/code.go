// Package plz resolves German postal codes (Postleitzahlen) to Bundestag
// constituencies. Only curated ranges are trusted; everything else goes
// through a keyword match that refuses to guess between candidates.
package plz

import (
	"fmt"
	"regexp"
	"strconv"
)

var isCode = regexp.MustCompile(`^\d{5}$`)

// ValidCode reports whether code is exactly five ASCII digits.
func ValidCode(code string) bool {
	return isCode.MatchString(code)
}

func codeValue(code string) (int, error) {
	if !ValidCode(code) {
		return 0, fmt.Errorf("%w: %q is not a 5-digit postal code", ErrInvalidRange, code)
	}
	return strconv.Atoi(code)
}

func formatCode(v int) string {
	return fmt.Sprintf("%05d", v)
}
