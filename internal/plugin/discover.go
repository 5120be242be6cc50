package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// ErrNoManifests is returned when a repository contains no plugin
// manifests at all. A marketplace with zero plugins is invalid, so the
// run aborts before any write.
var ErrNoManifests = errors.New("no plugin manifests found")

// Discover walks the repository root and collects every file at a path
// ending in .claude-plugin/plugin.json, excluding the catalog's own
// manifest at catalogPath. The returned order is whatever the walk
// produces; callers must not rely on it, ordering is established at
// assembly.
func Discover(root, catalogPath string) ([]string, error) {
	absCatalog, err := filepath.Abs(catalogPath)
	if err != nil {
		return nil, err
	}

	var manifests []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != ManifestFile || filepath.Base(filepath.Dir(path)) != ManifestDir {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if abs == absCatalog {
			return nil
		}

		manifests = append(manifests, abs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	if len(manifests) == 0 {
		return nil, fmt.Errorf("%w: under %s", ErrNoManifests, root)
	}

	return manifests, nil
}
