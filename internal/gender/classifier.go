// Package gender infers a member's gender from a curated table, falling
// back to lists of common German given names.
package gender

import (
	"strings"

	"github.com/EmpoweredVote/mdb-finder/internal/names"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

type Gender string

const (
	Male    Gender = "male"
	Female  Gender = "female"
	Unknown Gender = "unknown"
)

// Parse accepts the spellings found in gender.csv exports.
func Parse(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "männlich", "maennlich":
		return Male
	case "female", "f", "w", "weiblich":
		return Female
	default:
		return Unknown
	}
}

// Classifier is immutable after New and safe for concurrent use.
type Classifier struct {
	exact  map[string]Gender
	male   map[string]struct{}
	female map[string]struct{}
}

// New builds a classifier. Each entry is stored under its normalized key and,
// for "Last, First" names, under the reordered key too. Later entries win.
func New(entries []roster.GenderEntry, male, female []string) *Classifier {
	c := &Classifier{
		exact:  make(map[string]Gender, len(entries)*2),
		male:   toSet(male),
		female: toSet(female),
	}
	for _, e := range entries {
		g := Parse(e.Gender)
		n := names.Normalize(e.Name)
		if n == "" {
			continue
		}
		c.exact[strings.ToLower(n)] = g
		if swapped, ok := names.Reorder(n); ok {
			c.exact[strings.ToLower(swapped)] = g
		}
	}
	return c
}

// NewDefault uses the built-in first-name lists.
func NewDefault(entries []roster.GenderEntry) *Classifier {
	return New(entries, DefaultMale, DefaultFemale)
}

func (c *Classifier) Classify(name string) Gender {
	key := names.Key(name)
	if key == "" {
		return Unknown
	}
	if g, ok := c.exact[key]; ok && g != Unknown {
		return g
	}

	first := names.FirstName(name)
	if _, ok := c.male[first]; ok {
		return Male
	}
	if _, ok := c.female[first]; ok {
		return Female
	}
	return Unknown
}

// Len reports the number of exact keys, both name orders included.
func (c *Classifier) Len() int { return len(c.exact) }

func toSet(list []string) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, s := range list {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out[s] = struct{}{}
		}
	}
	return out
}
