package cmd

import (
	"fmt"

	"github.com/egoavara/market-forge/internal/generate"
	"github.com/egoavara/market-forge/internal/i18n"
	"github.com/spf13/cobra"
)

var (
	generateRoot  string
	generateCheck bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the marketplace catalog from plugin manifests",
	Long: `Regenerate .claude-plugin/marketplace.json from the plugin.json
manifests found under the repository root.

The catalog header (name, owner, description) is kept as-is; the plugin
list is fully re-derived, sorted by name, and the catalog patch version
is bumped only when the generated content differs from what is on disk.
When nothing changed, nothing is written.

Example:
  market-forge generate
  market-forge generate --root ../my-plugins
  market-forge generate --check   # CI guard, exits 1 if out of date`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateRoot, "root", ".", "repository root to scan")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "report whether the catalog is out of date without writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := generate.NewConfig(generateRoot)

	var report *generate.Report
	var err error
	if generateCheck {
		report, err = generate.Check(cfg)
	} else {
		report, err = generate.Run(cfg)
	}
	if err != nil {
		return err
	}

	printSkipped(report)

	if verbose {
		for _, entry := range report.Entries {
			fmt.Printf("  %s (%s)\n", entry.Name, entry.Source)
		}
	}

	if !report.Changed {
		fmt.Println(i18n.T("NoChanges", map[string]any{"Count": len(report.Entries)}, len(report.Entries)))
		return nil
	}

	if generateCheck {
		return fmt.Errorf("%s", i18n.T("CheckOutOfDate", map[string]any{
			"Path": cfg.CatalogPath,
			"Old":  displayVersion(report.OldVersion),
			"New":  report.NewVersion,
		}))
	}

	fmt.Println(i18n.T("CatalogWritten", map[string]any{
		"Path":  cfg.CatalogPath,
		"Count": len(report.Entries),
		"Old":   displayVersion(report.OldVersion),
		"New":   report.NewVersion,
	}, len(report.Entries)))
	return nil
}

func printSkipped(report *generate.Report) {
	for _, s := range report.Skipped {
		fmt.Println(i18n.T("SkippedManifest", map[string]any{
			"Path":   s.Path,
			"Reason": s.Reason,
		}))
	}
}

// displayVersion shows an authored-but-absent version as the 1.0.0 it
// defaults to.
func displayVersion(v string) string {
	if v == "" {
		return "1.0.0"
	}
	return v
}
