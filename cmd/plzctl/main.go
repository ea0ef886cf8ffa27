// Command plzctl inspects and maintains the postal-code lookup data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/EmpoweredVote/mdb-finder/internal/finder"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

var (
	sourceFlag  string
	dataDirFlag string
	rangesFlag  string
)

func main() {
	_ = godotenv.Load(".env.local")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plzctl",
		Short: "Inspect and maintain the PLZ to Wahlkreis data",
		Long: `plzctl resolves postal codes and city names the same way the API does,
reports coverage of the curated ranges, and moves roster data between
CSV files, Postgres and the abgeordnetenwatch API.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "roster source: csv, postgres or abgeordnetenwatch (default: $ROSTER_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory of the CSV files (default: $DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&rangesFlag, "ranges", "", "curated range file (default: $PLZ_RANGES_FILE or the built-in ranges)")

	rootCmd.AddCommand(lookupCmd())
	rootCmd.AddCommand(cityCmd())
	rootCmd.AddCommand(coverageCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(refreshCmd())
	rootCmd.AddCommand(gapsCmd())
	return rootCmd
}

// rosterConfig applies the persistent flags on top of the environment.
func rosterConfig() roster.Config {
	cfg := roster.LoadFromEnv()
	if sourceFlag != "" {
		cfg.Source = roster.SourceType(sourceFlag)
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	return cfg
}

func loadService(ctx context.Context) (*finder.Service, error) {
	cfg := rosterConfig()
	path := rangesFlag
	if path == "" {
		path = finder.RangesPath(cfg.DataDir)
	}
	svc, err := finder.Load(ctx, cfg, path)
	if err != nil {
		return nil, fmt.Errorf("load service: %w", err)
	}
	return svc, nil
}
