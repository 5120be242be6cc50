package cmd

import (
	"fmt"
	"strings"

	"github.com/egoavara/market-forge/internal/i18n"
	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/egoavara/market-forge/internal/search"
	"github.com/spf13/cobra"
)

var (
	searchRoot   string
	searchSimple bool
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search the catalog for plugins",
	Long: `Search the catalog using fuzzy matching over plugin names,
descriptions, tags, and keywords.

Example:
  market-forge search formatter
  market-forge search code-review --simple`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchRoot, "root", ".", "repository root")
	searchCmd.Flags().BoolVar(&searchSimple, "simple", false, "use substring matching instead of fuzzy matching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	catalog, _, err := marketplace.Load(marketplace.CatalogPath(searchRoot))
	if err != nil {
		return err
	}

	var results []search.Result
	if searchSimple {
		results = search.Simple(catalog.Plugins, keyword)
	} else {
		results = search.Fuzzy(catalog.Plugins, keyword)
	}

	if len(results) == 0 {
		fmt.Println(i18n.T("NoResults", map[string]any{"Keyword": keyword}))
		return nil
	}

	fmt.Println(i18n.T("SearchResults", map[string]any{"Count": len(results)}, len(results)))
	fmt.Println()

	for _, r := range results {
		version := r.Entry.Version
		if version == "" {
			version = "latest"
		}

		fmt.Printf("  %s (v%s)\n", r.Entry.Name, version)
		fmt.Printf("    Source: %s\n", r.Entry.Source)

		if r.Entry.Description != "" {
			fmt.Printf("    %s\n", r.Entry.Description)
		}

		if len(r.Entry.Tags) > 0 {
			fmt.Printf("    Tags: %s\n", strings.Join(r.Entry.Tags, ", "))
		}

		fmt.Println()
	}

	return nil
}
