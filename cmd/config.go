package cmd

import (
	"fmt"

	"github.com/egoavara/market-forge/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage market-forge configuration",
	Long: `Manage market-forge configuration settings.

Example:
  market-forge config show
  market-forge config set locale ko-KR`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  locale  - Language setting
            Values: auto, en-US, ko-KR, etc.

Example:
  market-forge config set locale ko-KR`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Configuration:")
	fmt.Println("----------------------------------------")
	fmt.Printf("  locale: %s\n", cfg.Locale)

	fmt.Println()
	fmt.Println("Locale:")
	if cfg.Locale == "auto" {
		fmt.Println("  auto: System locale is auto-detected")
	} else {
		fmt.Printf("  %s: Using fixed locale\n", cfg.Locale)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	switch key {
	case "locale":
		if err := config.SetLocale(value); err != nil {
			return err
		}
		fmt.Printf("Locale set to '%s'. Restart market-forge to apply.\n", value)
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
