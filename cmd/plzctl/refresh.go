package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/abgeordnetenwatch"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/csvfile"
)

func refreshCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the current roster from abgeordnetenwatch and write members.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rosterConfig()
			if out == "" {
				out = filepath.Join(cfg.DataDir, csvfile.MembersFile)
			}

			client := abgeordnetenwatch.NewClient(cfg.AbgeordnetenwatchEndpoint, cfg.ParliamentPeriod)
			mandates, err := client.FetchMandates(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			members := make([]roster.Member, 0, len(mandates))
			for _, m := range mandates {
				members = append(members, abgeordnetenwatch.ToMember(m))
			}
			if err := csvfile.WriteMembers(f, members); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d members (period %d) to %s\n", len(members), cfg.ParliamentPeriod, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default: <data-dir>/members.csv)")
	return cmd
}
