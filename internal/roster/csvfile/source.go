package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

const (
	MembersFile    = "members.csv"
	ContactsFile   = "contacts.csv"
	GenderFile     = "gender.csv"
	LocalitiesFile = "localities.csv"
)

func init() {
	roster.RegisterSource(roster.SourceCSV, func(cfg roster.Config) (roster.Source, error) {
		return New(cfg.DataDir), nil
	})
}

// Source loads roster data from a directory of CSV files. members.csv is
// required; the other files are optional.
type Source struct {
	dir string
}

func New(dir string) *Source {
	return &Source{dir: dir}
}

func (s *Source) Name() string { return "csv" }

func (s *Source) Load(ctx context.Context) (roster.Data, error) {
	start := time.Now()

	var members []roster.Member
	if err := readFile(filepath.Join(s.dir, MembersFile), func(r io.Reader) (err error) {
		members, err = ParseMembers(r)
		return err
	}); err != nil {
		return roster.Data{}, err
	}

	data, err := LoadSupplementary(ctx, s.dir)
	if err != nil {
		return roster.Data{}, err
	}
	data.Members = members

	roster.LogLoad(s.Name(), data, time.Since(start))
	return data, nil
}

// LoadSupplementary reads contacts.csv, gender.csv and localities.csv from
// dir. Missing files are skipped with a log line.
func LoadSupplementary(ctx context.Context, dir string) (roster.Data, error) {
	var data roster.Data
	files := []struct {
		name  string
		parse func(io.Reader) error
	}{
		{ContactsFile, func(r io.Reader) (err error) { data.Contacts, err = ParseContacts(r); return err }},
		{GenderFile, func(r io.Reader) (err error) { data.Gender, err = ParseGender(r); return err }},
		{LocalitiesFile, func(r io.Reader) (err error) { data.Localities, err = ParseLocalities(r); return err }},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return roster.Data{}, err
		}
		path := filepath.Join(dir, f.name)
		err := readFile(path, f.parse)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[csv] %s not found, skipping", path)
			continue
		}
		if err != nil {
			return roster.Data{}, err
		}
	}
	return data, nil
}

func readFile(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
