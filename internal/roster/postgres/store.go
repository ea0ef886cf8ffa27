// Package postgres stores roster snapshots in the bundestag schema and
// serves them back as a roster source.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EmpoweredVote/mdb-finder/internal/constituency"
	"github.com/EmpoweredVote/mdb-finder/internal/db"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

var ErrWipeRequired = errors.New("refusing to import: wipe must be set (the importer truncates the bundestag tables)")

func init() {
	roster.RegisterSource(roster.SourcePostgres, func(cfg roster.Config) (roster.Source, error) {
		gdb, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := Migrate(gdb); err != nil {
			return nil, err
		}
		return New(gdb), nil
	})
}

// Migrate creates the schema and tables.
func Migrate(gdb *gorm.DB) error {
	if err := db.EnsureSchema(gdb, db.Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return gdb.AutoMigrate(
		&MemberRecord{},
		&ConstituencyRecord{},
		&ContactRecord{},
		&GenderRecord{},
		&LocalityRecord{},
	)
}

// Source reads the last imported snapshot.
type Source struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) *Source {
	return &Source{db: gdb}
}

func (s *Source) Name() string { return "postgres" }

func (s *Source) Load(ctx context.Context) (roster.Data, error) {
	start := time.Now()
	tx := s.db.WithContext(ctx)

	var constituencies []ConstituencyRecord
	if err := tx.Find(&constituencies).Error; err != nil {
		return roster.Data{}, fmt.Errorf("load constituencies: %w", err)
	}
	nameByNumber := make(map[string]string, len(constituencies))
	for _, c := range constituencies {
		nameByNumber[c.Number] = c.Name
	}

	var members []MemberRecord
	if err := tx.Order("position").Find(&members).Error; err != nil {
		return roster.Data{}, fmt.Errorf("load members: %w", err)
	}
	var contacts []ContactRecord
	if err := tx.Order("position").Find(&contacts).Error; err != nil {
		return roster.Data{}, fmt.Errorf("load contacts: %w", err)
	}
	var genders []GenderRecord
	if err := tx.Order("position").Find(&genders).Error; err != nil {
		return roster.Data{}, fmt.Errorf("load gender names: %w", err)
	}
	var localities []LocalityRecord
	if err := tx.Order("position").Find(&localities).Error; err != nil {
		return roster.Data{}, fmt.Errorf("load localities: %w", err)
	}

	data := roster.Data{
		Members:    make([]roster.Member, 0, len(members)),
		Contacts:   make([]roster.ContactRow, 0, len(contacts)),
		Gender:     make([]roster.GenderEntry, 0, len(genders)),
		Localities: make([]roster.LocalityRow, 0, len(localities)),
	}
	for _, m := range members {
		data.Members = append(data.Members, roster.Member{
			Name:               m.Name,
			Party:              m.Party,
			MdbID:              m.MdbID,
			ConstituencyNumber: m.ConstituencyNumber,
			ConstituencyName:   nameByNumber[m.ConstituencyNumber],
			ContactURL:         m.ContactURL,
			ProfileURL:         m.ProfileURL,
		})
	}
	for _, c := range contacts {
		data.Contacts = append(data.Contacts, roster.ContactRow{Name: c.Name, ContactURL: c.ContactURL})
	}
	for _, g := range genders {
		data.Gender = append(data.Gender, roster.GenderEntry{Name: g.Name, Gender: g.Gender})
	}
	for _, l := range localities {
		data.Localities = append(data.Localities, roster.LocalityRow{From: l.FromCode, To: l.ToCode, City: l.City})
	}

	roster.LogLoad(s.Name(), data, time.Since(start))
	return data, nil
}

// ImportConfig controls Save.
type ImportConfig struct {
	// Wipe must be true; Save replaces every table.
	Wipe      bool
	Namespace uuid.UUID
}

// Save replaces the stored snapshot with data inside one transaction.
func Save(ctx context.Context, gdb *gorm.DB, cfg ImportConfig, data roster.Data) error {
	if !cfg.Wipe {
		return ErrWipeRequired
	}
	ns := cfg.Namespace
	if ns == uuid.Nil {
		ns = DefaultNamespace
	}
	start := time.Now()

	members, constituencies := memberRecords(ns, data.Members)
	contacts := make([]ContactRecord, 0, len(data.Contacts))
	for i, c := range data.Contacts {
		contacts = append(contacts, ContactRecord{ID: ContactID(ns, i, c.Name), Position: i, Name: c.Name, ContactURL: c.ContactURL})
	}
	genders := make([]GenderRecord, 0, len(data.Gender))
	for i, g := range data.Gender {
		genders = append(genders, GenderRecord{ID: GenderID(ns, i, g.Name), Position: i, Name: g.Name, Gender: g.Gender})
	}
	localities := make([]LocalityRecord, 0, len(data.Localities))
	for i, l := range data.Localities {
		localities = append(localities, LocalityRecord{ID: LocalityID(ns, i, l.From, l.To), Position: i, FromCode: l.From, ToCode: l.To, City: l.City})
	}

	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return fmt.Errorf("wipe: %w", err)
		}
		if err := insert(tx, "constituencies", constituencies); err != nil {
			return err
		}
		if err := insert(tx, "members", members); err != nil {
			return err
		}
		if err := insert(tx, "contacts", contacts); err != nil {
			return err
		}
		if err := insert(tx, "gender_names", genders); err != nil {
			return err
		}
		return insert(tx, "localities", localities)
	})
	if err != nil {
		return err
	}

	roster.LogSave("postgres", len(members)+len(constituencies)+len(contacts)+len(genders)+len(localities), time.Since(start))
	return nil
}

// memberRecords splits members into rows plus one constituency row per
// number, named after the first non-empty name seen.
func memberRecords(ns uuid.UUID, members []roster.Member) ([]MemberRecord, []ConstituencyRecord) {
	records := make([]MemberRecord, 0, len(members))
	byNumber := map[string]int{}
	var constituencies []ConstituencyRecord

	for i, m := range members {
		num := constituency.PadNumber(m.ConstituencyNumber)
		records = append(records, MemberRecord{
			ID:                 MemberID(ns, i, m.MdbID, m.Name),
			Position:           i,
			Name:               m.Name,
			Party:              m.Party,
			MdbID:              m.MdbID,
			ConstituencyNumber: num,
			ContactURL:         m.ContactURL,
			ProfileURL:         m.ProfileURL,
		})
		if num == "" {
			continue
		}
		j, ok := byNumber[num]
		if !ok {
			byNumber[num] = len(constituencies)
			constituencies = append(constituencies, ConstituencyRecord{Number: num})
			j = len(constituencies) - 1
		}
		if constituencies[j].Name == "" && m.ConstituencyName != "" {
			constituencies[j].Name = m.ConstituencyName
			constituencies[j].Keywords = constituency.Keywords(m.ConstituencyName)
		}
	}
	return records, constituencies
}

func insert[T any](tx *gorm.DB, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, 500).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func wipe(tx *gorm.DB) error {
	return tx.Exec(`
		TRUNCATE TABLE
			bundestag.members,
			bundestag.constituencies,
			bundestag.contacts,
			bundestag.gender_names,
			bundestag.localities
	`).Error
}
