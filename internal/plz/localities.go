package plz

import (
	"fmt"
	"strings"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

type localityRange struct {
	from, to int
	city     string
}

// Localities maps postal-code ranges to city names. It only feeds the
// keyword fallback and is never treated as verified.
type Localities struct {
	ranges []localityRange
}

// NewLocalities validates rows. Overlapping rows are allowed; the first
// row containing a code wins.
func NewLocalities(rows []roster.LocalityRow) (*Localities, error) {
	l := &Localities{ranges: make([]localityRange, 0, len(rows))}
	for i, row := range rows {
		from, err := codeValue(strings.TrimSpace(row.From))
		if err != nil {
			return nil, fmt.Errorf("locality row %d: %w", i+1, err)
		}
		to, err := codeValue(strings.TrimSpace(row.To))
		if err != nil {
			return nil, fmt.Errorf("locality row %d: %w", i+1, err)
		}
		city := strings.TrimSpace(row.City)
		if from > to || city == "" {
			return nil, fmt.Errorf("locality row %d: %w: %s-%s %q", i+1, ErrInvalidRange, row.From, row.To, row.City)
		}
		l.ranges = append(l.ranges, localityRange{from: from, to: to, city: city})
	}
	return l, nil
}

// City returns the locality covering code.
func (l *Localities) City(code string) (string, bool) {
	if l == nil {
		return "", false
	}
	v, err := codeValue(code)
	if err != nil {
		return "", false
	}
	for _, r := range l.ranges {
		if v >= r.from && v <= r.to {
			return r.city, true
		}
	}
	return "", false
}

func (l *Localities) Len() int {
	if l == nil {
		return 0
	}
	return len(l.ranges)
}
