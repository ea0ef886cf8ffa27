package roster_test

import (
	"errors"
	"testing"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

// TestLoadFromEnvDefaults uses the csv source and ./data without env vars.
func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("ROSTER_SOURCE", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("ABGEORDNETENWATCH_PERIOD", "")
	t.Setenv("ABGEORDNETENWATCH_ENDPOINT", "")

	cfg := roster.LoadFromEnv()
	if cfg.Source != roster.SourceCSV {
		t.Errorf("Source = %q, want csv", cfg.Source)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q, want ./data", cfg.DataDir)
	}
	if cfg.ParliamentPeriod != roster.DefaultParliamentPeriod {
		t.Errorf("ParliamentPeriod = %d", cfg.ParliamentPeriod)
	}
	if cfg.AbgeordnetenwatchEndpoint != roster.DefaultAbgeordnetenwatchEndpoint {
		t.Errorf("AbgeordnetenwatchEndpoint = %q", cfg.AbgeordnetenwatchEndpoint)
	}
}

// TestLoadFromEnvOverrides reads every variable.
func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("ROSTER_SOURCE", " Abgeordnetenwatch ")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("ABGEORDNETENWATCH_PERIOD", "132")
	t.Setenv("DATABASE_URL", "postgres://localhost/mdb")

	cfg := roster.LoadFromEnv()
	if cfg.Source != roster.SourceAbgeordnetenwatch || cfg.DataDir != "/srv/data" || cfg.ParliamentPeriod != 132 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.DatabaseURL != "postgres://localhost/mdb" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

// TestValidate requires the settings of the selected source.
func TestValidate(t *testing.T) {
	tests := []struct {
		cfg  roster.Config
		want error
	}{
		{roster.Config{Source: roster.SourceCSV, DataDir: "data"}, nil},
		{roster.Config{Source: roster.SourceCSV}, roster.ErrMissingDataDir},
		{roster.Config{Source: roster.SourcePostgres}, roster.ErrMissingDatabaseURL},
		{roster.Config{Source: roster.SourceAbgeordnetenwatch}, roster.ErrInvalidPeriod},
		{roster.Config{Source: roster.SourceAbgeordnetenwatch, ParliamentPeriod: 161}, nil},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("Validate(%+v) = %v, want %v", tt.cfg, err, tt.want)
		}
	}
}

// TestNewSourceUnknown rejects unregistered source types.
func TestNewSourceUnknown(t *testing.T) {
	_, err := roster.NewSource(roster.Config{Source: "ftp"})
	if !errors.Is(err, roster.ErrUnknownSource) {
		t.Errorf("err = %v, want ErrUnknownSource", err)
	}
}
