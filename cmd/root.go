package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "market-forge",
		Short:         "Generate the marketplace catalog for a Claude Code plugin repository",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `market-forge synthesizes the .claude-plugin/marketplace.json catalog
of a plugin repository from the plugin.json manifests found inside it.

Each run re-derives every catalog entry from the manifests on disk,
sorts them by name, and bumps the catalog's patch version only when
the generated content actually changed.

Commands:
  generate  Regenerate the marketplace catalog
  validate  Check plugin manifests without writing anything
  list      List the plugins in the current catalog
  search    Search the catalog for plugins
  browse    Browse the catalog interactively`,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
}
