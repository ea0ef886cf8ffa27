package roster

import (
	"os"
	"strconv"
	"strings"
)

// SourceType identifies where roster data is loaded from.
type SourceType string

const (
	SourceCSV               SourceType = "csv"
	SourcePostgres          SourceType = "postgres"
	SourceAbgeordnetenwatch SourceType = "abgeordnetenwatch"
)

// DefaultAbgeordnetenwatchEndpoint is the public v2 API root.
const DefaultAbgeordnetenwatchEndpoint = "https://www.abgeordnetenwatch.de/api/v2"

// DefaultParliamentPeriod is the abgeordnetenwatch id of the current Bundestag term.
const DefaultParliamentPeriod = 161

// Config holds configuration for the roster source.
type Config struct {
	// Source type: "csv", "postgres" or "abgeordnetenwatch"
	Source SourceType

	// Directory holding members.csv, contacts.csv, gender.csv and localities.csv.
	// The abgeordnetenwatch source reads the supplementary files from here too.
	DataDir string

	// Postgres-specific config
	DatabaseURL string

	// abgeordnetenwatch-specific config
	AbgeordnetenwatchEndpoint string
	ParliamentPeriod          int
}

// LoadFromEnv loads roster configuration from environment variables.
//
// Environment variables:
//   - ROSTER_SOURCE: "csv", "postgres" or "abgeordnetenwatch" (default: "csv")
//   - DATA_DIR: directory of the CSV files (default: ./data)
//   - DATABASE_URL: Postgres DSN (required if using postgres)
//   - ABGEORDNETENWATCH_ENDPOINT: API root (default: https://www.abgeordnetenwatch.de/api/v2)
//   - ABGEORDNETENWATCH_PERIOD: parliament period id (default: 161)
func LoadFromEnv() Config {
	var source SourceType
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ROSTER_SOURCE"))) {
	case "postgres":
		source = SourcePostgres
	case "abgeordnetenwatch":
		source = SourceAbgeordnetenwatch
	case "", "csv":
		source = SourceCSV
	default:
		source = SourceType(strings.TrimSpace(os.Getenv("ROSTER_SOURCE")))
	}

	dir := strings.TrimSpace(os.Getenv("DATA_DIR"))
	if dir == "" {
		dir = "./data"
	}

	endpoint := strings.TrimSpace(os.Getenv("ABGEORDNETENWATCH_ENDPOINT"))
	if endpoint == "" {
		endpoint = DefaultAbgeordnetenwatchEndpoint
	}

	period := DefaultParliamentPeriod
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("ABGEORDNETENWATCH_PERIOD"))); err == nil && v > 0 {
		period = v
	}

	return Config{
		Source:                    source,
		DataDir:                   dir,
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		AbgeordnetenwatchEndpoint: endpoint,
		ParliamentPeriod:          period,
	}
}

// Validate checks that the configuration is valid for the selected source.
func (c Config) Validate() error {
	switch c.Source {
	case SourceCSV:
		if c.DataDir == "" {
			return ErrMissingDataDir
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	case SourceAbgeordnetenwatch:
		if c.ParliamentPeriod <= 0 {
			return ErrInvalidPeriod
		}
	}
	return nil
}
