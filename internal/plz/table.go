package plz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/EmpoweredVote/mdb-finder/internal/constituency"
)

var (
	ErrInvalidRange       = errors.New("invalid postal code range")
	ErrConflictingMapping = errors.New("postal code mapped to more than one constituency")
	ErrUnboundLocality    = errors.New("range locality does not identify exactly one constituency")
)

// LocalityMatcher finds constituencies whose keywords match a locality name.
// *constituency.Index implements it.
type LocalityMatcher interface {
	MatchLocality(locality string) []string
}

// Table is the verified, closed-world postal code table. A code not in the
// table is unknown; neighbouring codes are never interpolated.
type Table struct {
	codes map[string]string
}

// BuildTable expands the curated ranges. Ranges without an explicit
// constituency are bound through matcher and must hit exactly one.
func BuildTable(ranges []Range, matcher LocalityMatcher) (*Table, error) {
	t := &Table{codes: make(map[string]string)}
	for i, r := range ranges {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("range %d (%s): %w", i+1, r.Locality, err)
		}

		num := constituency.PadNumber(r.Constituency)
		if num == "" {
			if matcher == nil {
				return nil, fmt.Errorf("%w: %s (no matcher)", ErrUnboundLocality, r.Locality)
			}
			hits := matcher.MatchLocality(r.Locality)
			if len(hits) != 1 {
				return nil, fmt.Errorf("%w: %s matched %v", ErrUnboundLocality, r.Locality, hits)
			}
			num = hits[0]
		}

		for _, code := range r.expand() {
			if prev, ok := t.codes[code]; ok && prev != num {
				return nil, fmt.Errorf("%w: %s -> %s and %s", ErrConflictingMapping, code, prev, num)
			}
			t.codes[code] = num
		}
	}
	return t, nil
}

func (t *Table) Lookup(code string) (string, bool) {
	num, ok := t.codes[code]
	return num, ok
}

func (t *Table) Len() int { return len(t.codes) }

// Constituencies returns the distinct constituency numbers the table
// references, sorted.
func (t *Table) Constituencies() []string {
	seen := make(map[string]struct{})
	for _, num := range t.codes {
		seen[num] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for num := range seen {
		out = append(out, num)
	}
	sort.Strings(out)
	return out
}
