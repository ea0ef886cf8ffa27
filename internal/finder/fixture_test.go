package finder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EmpoweredVote/mdb-finder/internal/finder"
	"github.com/EmpoweredVote/mdb-finder/internal/plz"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

const meiserURL = "https://www.bundestag.de/services/formular/contactform?mdbId=1001"

func fixtureData() roster.Data {
	return roster.Data{
		Members: []roster.Member{
			{Name: "Meiser, Pascal", Party: "Die Linke", MdbID: "1001", ConstituencyNumber: "83", ConstituencyName: "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost"},
			{Name: "Bayram, Canan", Party: "BÜNDNIS 90/DIE GRÜNEN", ConstituencyNumber: "083", ConstituencyName: "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost"},
			{Name: "Gelbhaar, Stefan", Party: "BÜNDNIS 90/DIE GRÜNEN", ConstituencyNumber: "76", ConstituencyName: "Berlin-Pankow"},
			{Name: "Mack, Klaus", Party: "CDU/CSU", ConstituencyNumber: "280", ConstituencyName: "Calw"},
			{Name: "Baldy, Daniel", Party: "SPD", ConstituencyNumber: "205", ConstituencyName: "Mainz", ContactURL: "https://example.org/baldy"},
			{Name: "Beispiel, Anna", Party: "SPD", ConstituencyNumber: "206", ConstituencyName: "Mainz-Bingen"},
			{Name: "Lang, Ricarda", Party: "BÜNDNIS 90/DIE GRÜNEN"},
		},
		Contacts: []roster.ContactRow{
			{Name: "Meiser, Pascal", ContactURL: meiserURL},
			{Name: "Baldy, Daniel", ContactURL: "https://www.bundestag.de/services/formular/contactform?mdbId=1005"},
		},
		Gender: []roster.GenderEntry{
			{Name: "Bayram, Canan", Gender: "female"},
		},
		Localities: []roster.LocalityRow{
			{From: "55116", To: "55131", City: "Mainz"},
			{From: "10115", To: "14198", City: "Berlin"},
			{From: "72300", To: "72399", City: "Nagold-Land"},
		},
	}
}

func fixtureRanges() []plz.Range {
	return []plz.Range{
		{Locality: "Calw", From: "72213", To: "72296"},
		{Locality: "Berlin-Friedrichshain-Kreuzberg", Constituency: "083", Codes: []string{"10961", "10999"}},
		{Locality: "Berlin-Pankow", Constituency: "076", Codes: []string{"13187"}},
	}
}

func newService(t *testing.T) *finder.Service {
	t.Helper()
	svc, err := finder.Build(fixtureData(), fixtureRanges())
	require.NoError(t, err)
	return svc
}
