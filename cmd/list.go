package cmd

import (
	"fmt"
	"strings"

	"github.com/egoavara/market-forge/internal/i18n"
	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/spf13/cobra"
)

var listRoot string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the plugins in the current catalog",
	Long: `List the plugins recorded in the repository's marketplace.json.

Example:
  market-forge list
  market-forge list --root ../my-plugins`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listRoot, "root", ".", "repository root")
}

func runList(cmd *cobra.Command, args []string) error {
	catalog, _, err := marketplace.Load(marketplace.CatalogPath(listRoot))
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("ListHeader", map[string]any{
		"Name":    catalog.Name,
		"Version": displayVersion(catalog.Version),
	}))
	fmt.Println(strings.Repeat("-", 40))

	if len(catalog.Plugins) == 0 {
		fmt.Println(i18n.T("NoPluginsAvailable", nil))
		return nil
	}

	for _, entry := range catalog.Plugins {
		version := entry.Version
		if version == "" {
			version = "latest"
		}
		fmt.Printf("  %s (v%s)\n", entry.Name, version)
		fmt.Printf("    Source: %s\n", entry.Source)
		if entry.Description != "" {
			fmt.Printf("    %s\n", entry.Description)
		}
		fmt.Println()
	}

	return nil
}
