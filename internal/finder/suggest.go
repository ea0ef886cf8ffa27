package finder

import (
	"sort"

	"github.com/antzucaro/matchr"

	"github.com/EmpoweredVote/mdb-finder/internal/constituency"
)

const (
	suggestThreshold = 0.85
	maxSuggestions   = 5
)

// Suggest returns constituency keywords that look like a misspelling of
// name, best match first.
func (s *Service) Suggest(name string) []string {
	q := constituency.Fold(name)
	if q == "" {
		return nil
	}

	type scored struct {
		keyword string
		score   float64
	}
	var hits []scored
	for _, kw := range s.index.Vocabulary() {
		if sim := matchr.JaroWinkler(q, kw, false); sim >= suggestThreshold {
			hits = append(hits, scored{kw, sim})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	var out []string
	for i := 0; i < len(hits) && i < maxSuggestions; i++ {
		out = append(out, hits[i].keyword)
	}
	return out
}
