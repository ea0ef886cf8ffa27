package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EmpoweredVote/mdb-finder/internal/plz"
)

func coverageCmd() *cobra.Command {
	var onlyMissing bool
	cmd := &cobra.Command{
		Use:   "coverage [plz...]",
		Short: "Report how postal codes resolve (defaults to a nationwide sample)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			codes := args
			if len(codes) == 0 {
				codes = samplePLZ
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"PLZ", "Status", "Confidence", "Wahlkreis", "Locality"})

			counts := map[plz.Status]int{}
			for _, code := range codes {
				res := svc.ResolveConstituency(code)
				counts[res.Status]++
				if onlyMissing && res.Status == plz.StatusResolved {
					continue
				}
				wk := res.Constituency
				if res.Status == plz.StatusAmbiguous {
					wk = fmt.Sprint(res.Candidates)
				}
				t.AppendRow(table.Row{code, res.Status, res.Confidence, wk, res.Locality})
			}

			t.SetStyle(table.StyleRounded)
			t.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "resolved %d/%d, ambiguous %d, unresolved %d, invalid %d\n",
				counts[plz.StatusResolved], len(codes), counts[plz.StatusAmbiguous],
				counts[plz.StatusUnresolved], counts[plz.StatusInvalidFormat])
			return nil
		},
	}
	cmd.Flags().BoolVar(&onlyMissing, "missing", false, "only list codes that did not resolve")
	return cmd
}
