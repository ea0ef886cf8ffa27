package finder_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EmpoweredVote/mdb-finder/internal/finder"
	"github.com/EmpoweredVote/mdb-finder/internal/plz"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

// TestLoadSampleData builds the service from the shipped data directory and
// the embedded ranges, so every locality-bound range must bind uniquely.
func TestLoadSampleData(t *testing.T) {
	cfg := roster.Config{Source: roster.SourceCSV, DataDir: "../../data"}
	svc, err := finder.Load(context.Background(), cfg, "")
	require.NoError(t, err)

	tests := []struct {
		code       string
		typ        finder.ResponseType
		confidence plz.Confidence
		wahlkreis  string
	}{
		{"10961", finder.TypeMembers, plz.ConfidenceVerified, "083"},
		{"13187", finder.TypeMembers, plz.ConfidenceVerified, "076"},
		{"33100", finder.TypeMembers, plz.ConfidenceVerified, "136"},
		{"72213", finder.TypeMembers, plz.ConfidenceVerified, "280"},
		{"52062", finder.TypeMembers, plz.ConfidenceVerified, "086"},
		{"49074", finder.TypeMembers, plz.ConfidenceVerified, "039"},
		{"55116", finder.TypeMembers, plz.ConfidenceKeyword, "205"},
		{"60311", finder.TypeMultiple, plz.ConfidenceKeyword, ""},
		{"50667", finder.TypeNotFound, "", ""},
	}
	for _, tt := range tests {
		resp, err := svc.FindByPostalCode(tt.code)
		require.NoError(t, err, tt.code)
		require.Equal(t, tt.typ, resp.Type, tt.code)
		require.Equal(t, tt.confidence, resp.Confidence, tt.code)
		if tt.wahlkreis != "" {
			require.Equal(t, tt.wahlkreis, resp.Wahlkreis.Number, tt.code)
		}
	}

	resp, err := svc.FindByPostalCode("33100")
	require.NoError(t, err)
	require.NotNil(t, resp.Members[0].ContactURL)
	require.Equal(t, "https://www.carsten-linnemann.de/kontakt", *resp.Members[0].ContactURL)
	require.Equal(t, 1, svc.Stats()["list_only"])
}

// TestDefaultRangesWithSharedNames builds the embedded ranges against a roster
// where several constituencies share a city name, as the real Bundestag does.
func TestDefaultRangesWithSharedNames(t *testing.T) {
	seats := [][2]string{
		{"083", "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost"},
		{"076", "Berlin-Pankow"},
		{"136", "Paderborn"},
		{"235", "Bamberg"},
		{"261", "Esslingen"},
		{"280", "Calw"},
		{"180", "Hanau"},
		{"038", "Osnabrück-Land"},
		{"039", "Stadt Osnabrück"},
		{"086", "Aachen I"},
		{"087", "Aachen II"},
		{"131", "Bielefeld – Gütersloh II"},
		{"275", "Mannheim"},
		{"185", "Offenbach"},
		{"052", "Goslar – Northeim – Osterode"},
	}
	var data roster.Data
	for i, s := range seats {
		data.Members = append(data.Members, roster.Member{
			Name:               fmt.Sprintf("Mitglied, Nummer %d", i),
			Party:              "SPD",
			ConstituencyNumber: s[0],
			ConstituencyName:   s[1],
		})
	}

	ranges, err := plz.DefaultRanges()
	require.NoError(t, err)
	svc, err := finder.Build(data, ranges)
	require.NoError(t, err)

	for code, want := range map[string]string{"52062": "086", "49074": "039", "33100": "136"} {
		res := svc.ResolveConstituency(code)
		require.Equal(t, plz.StatusResolved, res.Status, code)
		require.Equal(t, plz.ConfidenceVerified, res.Confidence, code)
		require.Equal(t, want, res.Constituency, code)
	}
}
