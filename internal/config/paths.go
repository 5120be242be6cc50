package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// MarketForgeDir returns the market-forge config directory path
// ~/.config/market-forge/
func MarketForgeDir() string {
	return filepath.Join(homeDir, ".config", "market-forge")
}

// ConfigPath returns the config.json file path
// ~/.config/market-forge/config.json
func ConfigPath() string {
	return filepath.Join(MarketForgeDir(), "config.json")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
