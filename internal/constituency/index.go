// Package constituency groups roster members by Wahlkreis and matches
// locality names against constituency names.
package constituency

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

type Constituency struct {
	Number          string          `json:"number"`
	Name            string          `json:"name"`
	Representatives []roster.Member `json:"-"`
	Keywords        []string        `json:"keywords,omitempty"`
}

// Index is immutable after Build.
type Index struct {
	byNumber   map[string]*Constituency
	numbers    []string
	listOnly   int
	vocabulary []string
}

// PadNumber zero-pads numeric constituency ids to three digits ("83" -> "083").
// Non-numeric input is returned trimmed.
func PadNumber(n string) string {
	n = strings.TrimSpace(n)
	v, err := strconv.Atoi(n)
	if err != nil || v < 0 {
		return n
	}
	return fmt.Sprintf("%03d", v)
}

// Build groups members by constituency number in input order. Rows without a
// number are list-only seats and are counted but not indexed.
func Build(members []roster.Member) *Index {
	idx := &Index{byNumber: make(map[string]*Constituency)}
	for _, m := range members {
		num := PadNumber(m.ConstituencyNumber)
		if num == "" {
			idx.listOnly++
			continue
		}
		m.ConstituencyNumber = num
		c, ok := idx.byNumber[num]
		if !ok {
			c = &Constituency{Number: num}
			idx.byNumber[num] = c
			idx.numbers = append(idx.numbers, num)
		}
		if c.Name == "" {
			c.Name = strings.TrimSpace(m.ConstituencyName)
		}
		c.Representatives = append(c.Representatives, m)
	}
	sort.Strings(idx.numbers)

	vocab := make(map[string]struct{})
	for _, num := range idx.numbers {
		c := idx.byNumber[num]
		c.Keywords = Keywords(c.Name)
		for _, kw := range c.Keywords {
			vocab[kw] = struct{}{}
		}
	}
	for kw := range vocab {
		idx.vocabulary = append(idx.vocabulary, kw)
	}
	sort.Strings(idx.vocabulary)
	return idx
}

func (idx *Index) Get(number string) (*Constituency, bool) {
	c, ok := idx.byNumber[PadNumber(number)]
	return c, ok
}

// Numbers returns the indexed constituency numbers in ascending order.
func (idx *Index) Numbers() []string {
	return append([]string(nil), idx.numbers...)
}

// All returns the constituencies ordered by number.
func (idx *Index) All() []*Constituency {
	out := make([]*Constituency, 0, len(idx.numbers))
	for _, num := range idx.numbers {
		out = append(out, idx.byNumber[num])
	}
	return out
}

func (idx *Index) Len() int { return len(idx.numbers) }

// ListOnly reports how many roster rows carried no constituency number.
func (idx *Index) ListOnly() int { return idx.listOnly }

// Vocabulary returns every keyword of every constituency, sorted.
func (idx *Index) Vocabulary() []string {
	return append([]string(nil), idx.vocabulary...)
}

// MatchLocality returns the numbers of all constituencies with a keyword
// equal to or containing the folded locality, in ascending number order.
func (idx *Index) MatchLocality(locality string) []string {
	q := Fold(locality)
	if utf8.RuneCountInString(q) < minKeywordRunes {
		return nil
	}
	var out []string
	for _, num := range idx.numbers {
		for _, kw := range idx.byNumber[num].Keywords {
			if strings.Contains(kw, q) {
				out = append(out, num)
				break
			}
		}
	}
	return out
}
