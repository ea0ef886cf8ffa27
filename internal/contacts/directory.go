// Package contacts maps member names to their Bundestag contact form URL.
package contacts

import (
	"strings"

	"github.com/EmpoweredVote/mdb-finder/internal/names"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

// Directory is built once and only read afterwards.
type Directory struct {
	urls map[string]string
}

// Build indexes rows under their normalized key and, for "Last, First"
// rows, under the "first last" key too. Rows are applied in order, so a
// later row replaces an earlier one with the same key. Rows with a blank
// name or URL are skipped and never clear an earlier URL.
func Build(rows []roster.ContactRow) *Directory {
	d := &Directory{urls: make(map[string]string, len(rows)*2)}
	for _, row := range rows {
		url := strings.TrimSpace(row.ContactURL)
		n := names.Normalize(row.Name)
		if n == "" || url == "" {
			continue
		}
		d.urls[strings.ToLower(n)] = url
		if swapped, ok := names.Reorder(n); ok {
			d.urls[strings.ToLower(swapped)] = url
		}
	}
	return d
}

func (d *Directory) Lookup(name string) (string, bool) {
	url, ok := d.urls[names.Key(name)]
	return url, ok
}

func (d *Directory) Len() int { return len(d.urls) }
