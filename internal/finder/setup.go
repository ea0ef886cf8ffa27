package finder

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/EmpoweredVote/mdb-finder/internal/constituency"
	"github.com/EmpoweredVote/mdb-finder/internal/contacts"
	"github.com/EmpoweredVote/mdb-finder/internal/gender"
	"github.com/EmpoweredVote/mdb-finder/internal/plz"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"

	// Import sources to register them via init()
	_ "github.com/EmpoweredVote/mdb-finder/internal/roster/abgeordnetenwatch"
	_ "github.com/EmpoweredVote/mdb-finder/internal/roster/csvfile"
	_ "github.com/EmpoweredVote/mdb-finder/internal/roster/postgres"
)

const loadTimeout = 2 * time.Minute

// Init loads the configured roster and builds the service, exiting on any
// inconsistency. All tables are immutable once it returns.
func Init() *Service {
	cfg := roster.LoadFromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	svc, err := Load(ctx, cfg, RangesPath(cfg.DataDir))
	if err != nil {
		log.Fatal("Failed to initialize finder: ", err)
	}
	log.Printf("[finder] ready source=%s %v", cfg.Source, svc.Stats())
	return svc
}

// RangesPath picks PLZ_RANGES_FILE, then plz_ranges.yaml in dataDir.
// An empty result selects the compiled-in ranges.
func RangesPath(dataDir string) string {
	if p := strings.TrimSpace(os.Getenv("PLZ_RANGES_FILE")); p != "" {
		return p
	}
	p := filepath.Join(dataDir, "plz_ranges.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Load reads the roster from the configured source and builds the service.
func Load(ctx context.Context, cfg roster.Config, rangesPath string) (*Service, error) {
	src, err := roster.NewSource(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[finder] loading roster from %s", src.Name())

	data, err := src.Load(ctx)
	if err != nil {
		roster.LogError(src.Name(), "load", err)
		return nil, fmt.Errorf("load roster: %w", err)
	}

	ranges, err := plz.LoadRanges(rangesPath)
	if err != nil {
		return nil, fmt.Errorf("load plz ranges: %w", err)
	}
	return Build(data, ranges)
}

// Build derives every lookup table from one roster snapshot.
func Build(data roster.Data, ranges []plz.Range) (*Service, error) {
	index := constituency.Build(data.Members)

	table, err := plz.BuildTable(ranges, index)
	if err != nil {
		return nil, fmt.Errorf("build verified table: %w", err)
	}
	localities, err := plz.NewLocalities(data.Localities)
	if err != nil {
		return nil, fmt.Errorf("build locality table: %w", err)
	}

	return New(
		plz.NewResolver(table, localities, index),
		index,
		contacts.Build(data.Contacts),
		gender.NewDefault(data.Gender),
	)
}
