package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EmpoweredVote/mdb-finder/internal/db"
	"github.com/EmpoweredVote/mdb-finder/internal/finder"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/csvfile"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/postgres"
)

func importCmd() *cobra.Command {
	var (
		dbURL     string
		namespace string
		wipe      bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the CSV data directory into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				dbURL = os.Getenv("DATABASE_URL")
			}
			ns := postgres.DefaultNamespace
			if namespace != "" {
				parsed, err := uuid.Parse(namespace)
				if err != nil {
					return fmt.Errorf("invalid namespace uuid: %w", err)
				}
				ns = parsed
			}

			data, err := csvfile.New(rosterConfig().DataDir).Load(cmd.Context())
			if err != nil {
				return err
			}

			gdb, err := db.Open(dbURL)
			if err != nil {
				return err
			}
			if err := postgres.Migrate(gdb); err != nil {
				return err
			}
			if err := postgres.Save(cmd.Context(), gdb, postgres.ImportConfig{Wipe: wipe, Namespace: ns}, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d members, %d contacts, %d gender names, %d localities\n",
				len(data.Members), len(data.Contacts), len(data.Gender), len(data.Localities))
			return nil
		},
	}
	cmd.Flags().StringVar(&dbURL, "db", "", "Postgres DSN (default: $DATABASE_URL)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "UUID namespace for row ids (keep stable across imports)")
	cmd.Flags().BoolVar(&wipe, "wipe", false, "DANGER: truncates the bundestag tables before importing")
	return cmd
}

func gapsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "List the most searched postal codes that did not resolve to members",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := db.Open(os.Getenv("DATABASE_URL"))
			if err != nil {
				return err
			}
			ll, err := finder.NewLookupLog(gdb)
			if err != nil {
				return err
			}
			rows, err := ll.Gaps(cmd.Context(), limit)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"PLZ", "Outcome", "Count", "Last seen"})
			for _, r := range rows {
				t.AppendRow(table.Row{r.PLZ, r.Outcome, r.Count, r.LastSeenAt.Format("2006-01-02 15:04")})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "number of rows")
	return cmd
}
