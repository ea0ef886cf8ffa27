package csvfile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/csvfile"
)

const membersCSV = "\ufeffname,fraktion,mdbId,wahlkreis_number,wahlkreis_name,contact_url\n" +
	"\"Meiser, Pascal\",Die Linke,1001,83,Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost,\n" +
	"\"Lang, Ricarda\",BÜNDNIS 90/DIE GRÜNEN,1002,,,https://example.org/lang\n"

// TestParseMembers reads the BOM-prefixed export with an empty number.
func TestParseMembers(t *testing.T) {
	got, err := csvfile.ParseMembers(strings.NewReader(membersCSV))
	require.NoError(t, err)

	want := []roster.Member{
		{Name: "Meiser, Pascal", Party: "Die Linke", MdbID: "1001", ConstituencyNumber: "83", ConstituencyName: "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost"},
		{Name: "Lang, Ricarda", Party: "BÜNDNIS 90/DIE GRÜNEN", MdbID: "1002", ContactURL: "https://example.org/lang"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
}

// TestParseMembersErrors reports missing columns and blank names.
func TestParseMembersErrors(t *testing.T) {
	_, err := csvfile.ParseMembers(strings.NewReader("name,wahlkreis_number\nA,1\n"))
	require.ErrorContains(t, err, "missing required column: fraktion")

	_, err = csvfile.ParseMembers(strings.NewReader("name,fraktion,wahlkreis_number\n,SPD,1\n"))
	require.ErrorContains(t, err, "row 2: name is required")

	_, err = csvfile.ParseMembers(strings.NewReader("name,fraktion,wahlkreis_number\n"))
	require.ErrorIs(t, err, csvfile.ErrNoRows)
}

// TestWriteMembersReadable writes a file ParseMembers reads back unchanged.
func TestWriteMembersReadable(t *testing.T) {
	in, err := csvfile.ParseMembers(strings.NewReader(membersCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvfile.WriteMembers(&buf, in))

	out, err := csvfile.ParseMembers(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

// TestSourceLoad reads a data directory with one optional file missing.
func TestSourceLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write(csvfile.MembersFile, membersCSV)
	write(csvfile.ContactsFile, "name,contact_url\n\"Meiser, Pascal\",https://www.bundestag.de/services/formular/contactform?mdbId=1001\n")
	write(csvfile.LocalitiesFile, "from,to,city\n10115,14198,Berlin\n")

	data, err := csvfile.New(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Members, 2)
	require.Len(t, data.Contacts, 1)
	require.Empty(t, data.Gender)
	require.Equal(t, []roster.LocalityRow{{From: "10115", To: "14198", City: "Berlin"}}, data.Localities)
}

// TestSourceLoadRequiresMembers fails without members.csv.
func TestSourceLoadRequiresMembers(t *testing.T) {
	_, err := csvfile.New(t.TempDir()).Load(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRegistered makes the csv source available through the registry.
func TestRegistered(t *testing.T) {
	src, err := roster.NewSource(roster.Config{Source: roster.SourceCSV, DataDir: t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, "csv", src.Name())
}
