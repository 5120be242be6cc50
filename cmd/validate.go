package cmd

import (
	"fmt"

	"github.com/egoavara/market-forge/internal/generate"
	"github.com/egoavara/market-forge/internal/i18n"
	"github.com/spf13/cobra"
)

var validateRoot string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check plugin manifests without writing the catalog",
	Long: `Discover and normalize every plugin manifest under the repository
root, reporting parse failures, skipped manifests, and duplicate names.
Never writes anything.

Example:
  market-forge validate
  market-forge validate --root ../my-plugins`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateRoot, "root", ".", "repository root to scan")
}

func runValidate(cmd *cobra.Command, args []string) error {
	report, err := generate.Validate(generate.NewConfig(validateRoot))
	if err != nil {
		return err
	}

	printSkipped(report)

	for _, entry := range report.Entries {
		fmt.Printf("  %s (%s)\n", entry.Name, entry.Source)
	}

	fmt.Println(i18n.T("ValidateOK", map[string]any{"Count": len(report.Entries)}, len(report.Entries)))
	return nil
}
