package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/spf13/cobra"
)

func newInstrumentsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "instruments",
		Short: "List the built-in instruments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tITEMS\tSTATISTICS")
			for _, q := range instruments.DefaultRegistry().List() {
				fmt.Fprintf(w, "%s\t%d\t%s\n", q.Name(), len(q.Questions()), strings.Join(q.Statistics(), ", "))
				if verbose {
					fmt.Fprintf(w, "\t\t%s\n", q.Info().Description)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include descriptions")
	return cmd
}
