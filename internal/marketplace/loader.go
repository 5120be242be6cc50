package marketplace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no marketplace manifest exists at the
// expected path. Generation requires an existing manifest because the
// catalog header (name, owner) is authored there, never synthesized.
var ErrNotFound = errors.New("marketplace manifest not found")

// CatalogPath returns the canonical marketplace.json path for a
// repository root.
func CatalogPath(root string) string {
	return filepath.Join(root, ManifestDir, ManifestFile)
}

// Load reads and parses the marketplace manifest at path. The raw file
// bytes are returned alongside the parsed document so callers can
// digest the previously persisted content as-is.
func Load(path string) (*Marketplace, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Marketplace
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &m, data, nil
}

// Serialize renders the marketplace in its canonical on-disk form:
// fixed key order, two-space indent, trailing newline. Re-serializing
// an unchanged catalog yields byte-identical output.
func Serialize(m *Marketplace) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
