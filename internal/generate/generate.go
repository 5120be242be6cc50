// Package generate runs the catalog synthesis pipeline: discover plugin
// manifests, normalize them into catalog entries, assemble them under
// the existing catalog header, bump the catalog version when content
// changed, and atomically persist the result.
package generate

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/egoavara/market-forge/internal/plugin"
)

// Config carries the explicit inputs of one synthesis run. Nothing is
// read from the environment; callers always state where the repository
// and its catalog live.
type Config struct {
	RepoRoot    string
	CatalogPath string
}

// NewConfig builds a Config for a repository root with the canonical
// catalog path.
func NewConfig(root string) Config {
	return Config{
		RepoRoot:    root,
		CatalogPath: marketplace.CatalogPath(root),
	}
}

// Skipped records a manifest left out of the catalog and why.
type Skipped struct {
	Path   string
	Reason string
}

// Report summarizes one synthesis run.
type Report struct {
	Entries    []marketplace.PluginEntry
	Skipped    []Skipped
	OldVersion string
	NewVersion string
	Changed    bool
	Written    bool
}

// Run executes the full pipeline and writes the catalog when its
// content changed. No write of any kind happens on the error path.
func Run(cfg Config) (*Report, error) {
	return run(cfg, false)
}

// Check executes the full pipeline but never writes; the report says
// whether a real run would have changed the catalog.
func Check(cfg Config) (*Report, error) {
	return run(cfg, true)
}

func run(cfg Config, dryRun bool) (*Report, error) {
	prev, prevRaw, err := marketplace.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	entries, skipped, err := collectEntries(cfg)
	if err != nil {
		return nil, err
	}

	next, err := marketplace.Assemble(prev, entries)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Entries:    next.Plugins,
		Skipped:    skipped,
		OldVersion: prev.Version,
		NewVersion: prev.Version,
	}

	// First pass keeps the previous version so the digest comparison
	// is blind to the bump it decides about.
	candidate, err := marketplace.Serialize(next)
	if err != nil {
		return nil, err
	}
	if sha256.Sum256(candidate) == sha256.Sum256(prevRaw) {
		return report, nil
	}

	version, err := marketplace.ParseVersion(prev.Version)
	if err != nil {
		return nil, err
	}
	bumped := version.BumpPatch()

	next.Version = bumped.String()
	report.NewVersion = next.Version
	report.Changed = true

	if dryRun {
		return report, nil
	}

	final, err := marketplace.Serialize(next)
	if err != nil {
		return nil, err
	}
	if err := marketplace.WriteAtomic(cfg.CatalogPath, final); err != nil {
		return nil, err
	}

	report.Written = true
	return report, nil
}

// Validate runs discovery, normalization, and assembly without touching
// versioning or the destination file. A missing catalog manifest is
// tolerated here so authors can check plugins before seeding the
// catalog header.
func Validate(cfg Config) (*Report, error) {
	prev, _, err := marketplace.Load(cfg.CatalogPath)
	if err != nil {
		if !errors.Is(err, marketplace.ErrNotFound) {
			return nil, err
		}
		prev = &marketplace.Marketplace{}
	}

	entries, skipped, err := collectEntries(cfg)
	if err != nil {
		return nil, err
	}

	assembled, err := marketplace.Assemble(prev, entries)
	if err != nil {
		return nil, err
	}

	return &Report{
		Entries:    assembled.Plugins,
		Skipped:    skipped,
		OldVersion: prev.Version,
		NewVersion: prev.Version,
	}, nil
}

func collectEntries(cfg Config) ([]marketplace.PluginEntry, []Skipped, error) {
	paths, err := plugin.Discover(cfg.RepoRoot, cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	var entries []marketplace.PluginEntry
	var skipped []Skipped
	for _, path := range paths {
		entry, err := plugin.Normalize(cfg.RepoRoot, path)
		if err != nil {
			if errors.Is(err, plugin.ErrMissingName) {
				skipped = append(skipped, Skipped{Path: path, Reason: "missing or invalid name"})
				continue
			}
			return nil, nil, err
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 && len(skipped) > 0 {
		return nil, nil, fmt.Errorf("%w: every manifest under %s was skipped", plugin.ErrNoManifests, cfg.RepoRoot)
	}

	return entries, skipped, nil
}
