package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/i474232898/ims-api/internal/locations"
)

func newLocationsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the known IMS location IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sorted := locations.Sorted()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sorted)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, loc := range sorted {
				fmt.Fprintf(w, "%d\t%s\n", loc.ID, loc.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
