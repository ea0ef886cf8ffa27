package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EmpoweredVote/mdb-finder/internal/finder"
)

func lookupCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lookup <plz>",
		Short: "Resolve a postal code to its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.FindByPostalCode(args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the API response as JSON")
	return cmd
}

func cityCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "city <name>",
		Short: "Resolve a city name through the keyword index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.FindByCity(args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the API response as JSON")
	return cmd
}

func printResponse(w io.Writer, resp finder.Response, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	switch resp.Type {
	case finder.TypeMembers:
		fmt.Fprintf(w, "%s (%s)\n", resp.Wahlkreis.Title, resp.Confidence)
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Name", "Party", "Gender", "Contact"})
		for _, m := range resp.Members {
			contact := "-"
			if m.ContactURL != nil {
				contact = *m.ContactURL
			}
			t.AppendRow(table.Row{m.Name, m.Party, m.Gender, contact})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	case finder.TypeMultiple:
		fmt.Fprintln(w, resp.Message)
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Wahlkreis", "Name", "Members"})
		for _, o := range resp.Options {
			t.AppendRow(table.Row{o.Number, o.Name, o.MemberCount})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	default:
		fmt.Fprintln(w, resp.Message)
		for _, s := range resp.Suggestions {
			fmt.Fprintf(w, "  did you mean %q?\n", s)
		}
	}
	return nil
}
