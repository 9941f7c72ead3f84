package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "combo",
	Short: "combo - check text against combinator grammars",
	Long: `combo checks lines of text against ready-made grammars built from
composable matchers: integers, decimals, identifiers, colors, phone numbers,
e-mail addresses and balanced parentheses.

It exits 0 when every line matched, 1 when some line did not and 2 on error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
