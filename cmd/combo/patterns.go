package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zostay/combo/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List available patterns",
	Long:  "Display the built-in patterns that check can match against",
	RunE:  runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Name\tDescription\n")
	fmt.Fprintf(w, "----\t-----------\n")

	for _, p := range patterns.All() {
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
	}

	return nil
}
