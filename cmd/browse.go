package cmd

import (
	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/egoavara/market-forge/internal/tui"
	"github.com/spf13/cobra"
)

var browseRoot string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open an interactive browser over the catalog entries with
incremental fuzzy filtering and a detail preview.

Example:
  market-forge browse
  market-forge browse --root ../my-plugins`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseRoot, "root", ".", "repository root")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	catalog, _, err := marketplace.Load(marketplace.CatalogPath(browseRoot))
	if err != nil {
		return err
	}

	return tui.Browse(catalog)
}
