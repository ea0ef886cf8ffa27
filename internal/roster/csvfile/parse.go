// Package csvfile reads roster tables from CSV exports in a data directory.
package csvfile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

var ErrNoRows = errors.New("csv has no data rows")

// table is a decoded CSV with a header -> column map.
type table struct {
	col     map[string]int
	records [][]string
}

func readTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, ErrNoRows
	}

	header := records[0]
	// Excel exports start with a BOM
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, k := range required {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("missing required column: %s", k)
		}
	}
	return &table{col: col, records: records[1:]}, nil
}

// each calls fn with a getter for every data row. Row numbers in errors are
// 1-based and count the header.
func (t *table) each(fn func(row int, get func(string) string) error) error {
	for i, rec := range t.records {
		get := func(name string) string {
			c, ok := t.col[name]
			if !ok || c >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[c])
		}
		if err := fn(i+2, get); err != nil {
			return err
		}
	}
	return nil
}

// ParseMembers reads members.csv:
// name,fraktion,mdbId,wahlkreis_number,wahlkreis_name,contact_url[,profile_url]
func ParseMembers(r io.Reader) ([]roster.Member, error) {
	t, err := readTable(r, "name", "fraktion", "wahlkreis_number")
	if err != nil {
		return nil, err
	}
	var out []roster.Member
	err = t.each(func(row int, get func(string) string) error {
		name := get("name")
		if name == "" {
			return fmt.Errorf("row %d: name is required", row)
		}
		out = append(out, roster.Member{
			Name:               name,
			Party:              get("fraktion"),
			MdbID:              get("mdbid"),
			ConstituencyNumber: get("wahlkreis_number"),
			ConstituencyName:   get("wahlkreis_name"),
			ContactURL:         get("contact_url"),
			ProfileURL:         get("profile_url"),
		})
		return nil
	})
	return out, err
}

// ParseContacts reads contacts.csv: name,contact_url
func ParseContacts(r io.Reader) ([]roster.ContactRow, error) {
	t, err := readTable(r, "name", "contact_url")
	if err != nil {
		return nil, err
	}
	var out []roster.ContactRow
	err = t.each(func(row int, get func(string) string) error {
		if get("name") == "" {
			return fmt.Errorf("row %d: name is required", row)
		}
		out = append(out, roster.ContactRow{Name: get("name"), ContactURL: get("contact_url")})
		return nil
	})
	return out, err
}

// ParseGender reads gender.csv: name,gender
func ParseGender(r io.Reader) ([]roster.GenderEntry, error) {
	t, err := readTable(r, "name", "gender")
	if err != nil {
		return nil, err
	}
	var out []roster.GenderEntry
	err = t.each(func(row int, get func(string) string) error {
		if get("name") == "" {
			return fmt.Errorf("row %d: name is required", row)
		}
		out = append(out, roster.GenderEntry{Name: get("name"), Gender: get("gender")})
		return nil
	})
	return out, err
}

// ParseLocalities reads localities.csv: from,to,city
func ParseLocalities(r io.Reader) ([]roster.LocalityRow, error) {
	t, err := readTable(r, "from", "to", "city")
	if err != nil {
		return nil, err
	}
	var out []roster.LocalityRow
	err = t.each(func(row int, get func(string) string) error {
		if get("from") == "" || get("to") == "" || get("city") == "" {
			return fmt.Errorf("row %d: from, to and city are required", row)
		}
		out = append(out, roster.LocalityRow{From: get("from"), To: get("to"), City: get("city")})
		return nil
	})
	return out, err
}

// WriteMembers writes members in the layout ParseMembers reads.
func WriteMembers(w io.Writer, members []roster.Member) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "fraktion", "mdbId", "wahlkreis_number", "wahlkreis_name", "contact_url", "profile_url"}); err != nil {
		return err
	}
	for _, m := range members {
		if err := cw.Write([]string{m.Name, m.Party, m.MdbID, m.ConstituencyNumber, m.ConstituencyName, m.ContactURL, m.ProfileURL}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
