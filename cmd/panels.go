package cmd

import (
	"courtside/internal/panels"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPanelsCmd() *cobra.Command {
	var category string
	c := &cobra.Command{
		Use:   "panels",
		Short: "List the panels that can appear in the center region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := panels.All()
			if category != "" {
				defs = panels.ByCategory(panels.Category(category))
				if len(defs) == 0 {
					return fmt.Errorf("unknown panel category %q", category)
				}
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDESCRIPTION")
			for _, d := range defs {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", d.ID, d.Icon, d.Name, d.Category, d.Description)
			}
			return w.Flush()
		},
	}
	c.Flags().StringVar(&category, "category", "", "Only list panels in this category (player, comparison, market, schedule)")
	return c
}
