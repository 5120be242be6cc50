package plugin

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/egoavara/market-forge/internal/marketplace"
)

// Normalize reads one plugin manifest and projects it into a catalog
// entry. The entry's source is always derived from where the manifest
// sits on disk (the plugin directory two levels above the file, as a
// "./" repository-relative path), never from manifest content. Optional
// fields are copied only when present and non-empty.
func Normalize(root, manifestPath string) (marketplace.PluginEntry, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return marketplace.PluginEntry{}, fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
	}

	m, err := ParseManifest(manifestPath, data)
	if err != nil {
		return marketplace.PluginEntry{}, err
	}

	source, err := sourcePath(root, manifestPath)
	if err != nil {
		return marketplace.PluginEntry{}, err
	}

	return marketplace.PluginEntry{
		Name:        m.Name,
		Source:      source,
		Version:     m.String("version"),
		Description: m.String("description"),
		Author:      m.Raw("author"),
		Homepage:    m.String("homepage"),
		Repository:  m.String("repository"),
		License:     m.String("license"),
		Keywords:    m.StringList("keywords"),
		Category:    m.String("category"),
		Tags:        m.StringList("tags"),
		Commands:    m.Raw("commands"),
		Agents:      m.Raw("agents"),
		Hooks:       m.Raw("hooks"),
		MCPServers:  m.Raw("mcpServers"),
		Skills:      m.Raw("skills"),
	}, nil
}

// sourcePath strips /.claude-plugin/plugin.json from the manifest path
// and expresses the remaining plugin directory relative to root.
func sourcePath(root, manifestPath string) (string, error) {
	pluginDir := filepath.Dir(filepath.Dir(manifestPath))

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absRoot, pluginDir)
	if err != nil {
		return "", fmt.Errorf("manifest %s is outside repository root %s: %w", manifestPath, root, err)
	}

	if rel == "." {
		return "./", nil
	}
	return "./" + filepath.ToSlash(rel), nil
}
