package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/EmpoweredVote/mdb-finder/internal/db"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/postgres"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../../.env.local")

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		gdb, err := db.Open(dsn)
		if err == nil && postgres.Migrate(gdb) == nil {
			testDB = gdb
		}
	}
	os.Exit(m.Run())
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("DATABASE_URL not set")
	}
	return testDB
}

func snapshot() roster.Data {
	return roster.Data{
		Members: []roster.Member{
			{Name: "Meiser, Pascal", Party: "Die Linke", MdbID: "1001", ConstituencyNumber: "83", ConstituencyName: "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost"},
			{Name: "Bayram, Canan", Party: "BÜNDNIS 90/DIE GRÜNEN", ConstituencyNumber: "083"},
			{Name: "Lang, Ricarda", Party: "BÜNDNIS 90/DIE GRÜNEN"},
		},
		Contacts:   []roster.ContactRow{{Name: "Meiser, Pascal", ContactURL: "https://www.bundestag.de/services/formular/contactform?mdbId=1001"}},
		Gender:     []roster.GenderEntry{{Name: "Bayram, Canan", Gender: "female"}},
		Localities: []roster.LocalityRow{{From: "10115", To: "14198", City: "Berlin"}},
	}
}

// TestSaveRequiresWipe refuses to run without the wipe flag, even without a database.
func TestSaveRequiresWipe(t *testing.T) {
	err := postgres.Save(context.Background(), nil, postgres.ImportConfig{}, snapshot())
	require.ErrorIs(t, err, postgres.ErrWipeRequired)
}

// TestSaveLoadRoundTrip stores a snapshot and loads it back in row order.
func TestSaveLoadRoundTrip(t *testing.T) {
	gdb := requireDB(t)
	ctx := context.Background()

	require.NoError(t, postgres.Save(ctx, gdb, postgres.ImportConfig{Wipe: true}, snapshot()))
	// a second import replaces rather than appends
	require.NoError(t, postgres.Save(ctx, gdb, postgres.ImportConfig{Wipe: true}, snapshot()))

	data, err := postgres.New(gdb).Load(ctx)
	require.NoError(t, err)

	require.Len(t, data.Members, 3)
	require.Equal(t, "Meiser, Pascal", data.Members[0].Name)
	require.Equal(t, "083", data.Members[1].ConstituencyNumber)
	require.Equal(t, "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost", data.Members[1].ConstituencyName)
	require.Empty(t, data.Members[2].ConstituencyNumber)
	require.Equal(t, snapshot().Contacts, data.Contacts)
	require.Equal(t, snapshot().Gender, data.Gender)
	require.Equal(t, snapshot().Localities, data.Localities)

	var c postgres.ConstituencyRecord
	require.NoError(t, gdb.First(&c, "number = ?", "083").Error)
	require.Contains(t, []string(c.Keywords), "kreuzberg")
}

// TestIDsDeterministic derives the same ids for the same rows.
func TestIDsDeterministic(t *testing.T) {
	ns := postgres.DefaultNamespace
	require.Equal(t, postgres.MemberID(ns, 0, "1001", "x"), postgres.MemberID(ns, 0, "1001", "y"))
	require.Equal(t, postgres.MemberID(ns, 1, "", "Dr. Jan Muster"), postgres.MemberID(ns, 1, "", "jan muster"))
	require.NotEqual(t, postgres.MemberID(ns, 0, "1001", ""), postgres.MemberID(ns, 1, "1001", ""))
	require.NotEqual(t, postgres.ContactID(ns, 0, "a"), postgres.ContactID(uuid.New(), 0, "a"))
}
