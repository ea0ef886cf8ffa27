package abgeordnetenwatch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/abgeordnetenwatch"
)

func mandate(id int, name, constituency, fraction string) abgeordnetenwatch.Mandate {
	m := abgeordnetenwatch.Mandate{
		ID:         id,
		Politician: abgeordnetenwatch.Politician{ID: id * 10, Label: name, AbgeordnetenwatchURL: "https://www.abgeordnetenwatch.de/profile/" + strconv.Itoa(id)},
		FractionMembership: []abgeordnetenwatch.FractionMembership{
			{Fraction: abgeordnetenwatch.Entity{Label: fraction}},
		},
	}
	if constituency != "" {
		m.ElectoralData = &abgeordnetenwatch.ElectoralData{Constituency: &abgeordnetenwatch.Entity{Label: constituency}}
	}
	return m
}

// TestParseConstituencyLabel handles period suffixes and dashes inside names.
func TestParseConstituencyLabel(t *testing.T) {
	tests := []struct {
		label, num, name string
		ok               bool
	}{
		{"205 - Mainz (Bundestag 2021 - 2025)", "205", "Mainz", true},
		{"83 - Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost (Bundestag 2021 - 2025)", "083", "Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost", true},
		{"131 - Bielefeld - Gütersloh II", "131", "Bielefeld - Gütersloh II", true},
		{"Mainz", "", "", false},
		{"Land - Liste", "", "", false},
	}
	for _, tt := range tests {
		num, name, ok := abgeordnetenwatch.ParseConstituencyLabel(tt.label)
		if num != tt.num || name != tt.name || ok != tt.ok {
			t.Errorf("ParseConstituencyLabel(%q) = %q, %q, %v", tt.label, num, name, ok)
		}
	}
}

// TestToMember maps politician, party and constituency.
func TestToMember(t *testing.T) {
	m := mandate(7, "Daniel Baldy", "205 - Mainz (Bundestag 2021 - 2025)", "SPD (Bundestag 2021 - 2025)")
	m.FractionMembership = append([]abgeordnetenwatch.FractionMembership{
		{Fraction: abgeordnetenwatch.Entity{Label: "fraktionslos (Bundestag 2021 - 2025)"}, ValidUntil: "2022-01-01"},
	}, m.FractionMembership...)

	want := roster.Member{
		Name:               "Daniel Baldy",
		Party:              "SPD",
		MdbID:              "70",
		ConstituencyNumber: "205",
		ConstituencyName:   "Mainz",
		ProfileURL:         "https://www.abgeordnetenwatch.de/profile/7",
	}
	if diff := cmp.Diff(want, abgeordnetenwatch.ToMember(m)); diff != "" {
		t.Errorf("ToMember mismatch (-want +got):\n%s", diff)
	}

	listOnly := abgeordnetenwatch.ToMember(mandate(8, "Ricarda Lang", "", "BÜNDNIS 90/DIE GRÜNEN (Bundestag 2021 - 2025)"))
	if listOnly.ConstituencyNumber != "" || listOnly.Party != "BÜNDNIS 90/DIE GRÜNEN" {
		t.Errorf("unexpected list-only member: %+v", listOnly)
	}
}

// TestFetchMandatesPaginates follows meta.result.total across pages.
func TestFetchMandatesPaginates(t *testing.T) {
	pages := [][]abgeordnetenwatch.Mandate{
		{mandate(1, "A", "1 - Flensburg – Schleswig", "SPD"), mandate(2, "B", "", "CDU/CSU")},
		{mandate(3, "C", "2 - Nordfriesland – Dithmarschen Nord", "FDP")},
	}
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		q := r.URL.Query()
		if r.URL.Path != "/candidacies-mandates" || q.Get("parliament_period") != "161" || q.Get("type") != "mandate" {
			t.Errorf("unexpected request %s", r.URL)
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		var body abgeordnetenwatch.MandatesResponse
		body.Meta.Result.Total = 3
		if page < len(pages) {
			body.Data = pages[page]
		}
		body.Meta.Result.Count = len(body.Data)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	got, err := abgeordnetenwatch.NewClient(srv.URL, 161).FetchMandates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, 2, calls)
}

// TestFetchMandatesError surfaces non-2xx responses.
func TestFetchMandatesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := abgeordnetenwatch.NewClient(srv.URL, 161).FetchMandates(context.Background())
	require.ErrorContains(t, err, "status 502")
}

// TestSourceLoad combines API members with supplementary files.
func TestSourceLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body abgeordnetenwatch.MandatesResponse
		body.Data = []abgeordnetenwatch.Mandate{mandate(1, "Pascal Meiser", "83 - Berlin-Friedrichshain-Kreuzberg – Prenzlauer Berg Ost (Bundestag 2021 - 2025)", "DIE LINKE (Bundestag 2021 - 2025)")}
		body.Meta.Result.Total = 1
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	src := abgeordnetenwatch.New(abgeordnetenwatch.NewClient(srv.URL, 161), t.TempDir())
	data, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Members, 1)
	require.Equal(t, "083", data.Members[0].ConstituencyNumber)
	require.Equal(t, "DIE LINKE", data.Members[0].Party)
	require.Empty(t, data.Contacts)
}
