package marketplace

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAssemble_SortsByName(t *testing.T) {
	prev := &Marketplace{Name: "mp", Version: "1.0.0"}
	entries := []PluginEntry{
		{Name: "zebra", Source: "./zebra"},
		{Name: "alpha", Source: "./alpha"},
		{Name: "Mango", Source: "./mango"},
	}

	out, err := Assemble(prev, entries)
	require.NoError(t, err)

	// Bytewise order: uppercase sorts before lowercase.
	names := entryNames(out.Plugins)
	assert.Equal(t, []string{"Mango", "alpha", "zebra"}, names)

	// Input slice must not be reordered in place.
	assert.Equal(t, "zebra", entries[0].Name)
}

func TestAssemble_HeaderPassesThrough(t *testing.T) {
	prev := &Marketplace{
		Name:        "mp",
		Owner:       json.RawMessage(`"me"`),
		Description: "catalog",
		Version:     "3.1.4",
		Extra:       map[string]json.RawMessage{"custom": json.RawMessage(`true`)},
		Plugins:     []PluginEntry{{Name: "stale", Source: "./stale"}},
	}

	out, err := Assemble(prev, []PluginEntry{{Name: "fresh", Source: "./fresh"}})
	require.NoError(t, err)

	assert.Equal(t, prev.Name, out.Name)
	assert.Equal(t, prev.Description, out.Description)
	assert.Equal(t, prev.Version, out.Version)
	assert.Equal(t, prev.Extra, out.Extra)

	// The entry list is replaced wholesale: stale entries never survive.
	assert.Equal(t, []string{"fresh"}, entryNames(out.Plugins))
	assert.Equal(t, []string{"stale"}, entryNames(prev.Plugins), "previous catalog is not mutated")
}

func TestAssemble_DuplicateNames_Fatal(t *testing.T) {
	prev := &Marketplace{Name: "mp"}
	entries := []PluginEntry{
		{Name: "foo", Source: "./plugins/foo"},
		{Name: "bar", Source: "./bar"},
		{Name: "foo", Source: "./vendored/foo"},
	}

	_, err := Assemble(prev, entries)
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "foo", dup.Name)

	// Both conflicting sources must be named so the author can fix them.
	assert.Contains(t, dup.Error(), "./plugins/foo")
	assert.Contains(t, dup.Error(), "./vendored/foo")
}

func TestAssemble_SortInvariant_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfDistinct(
			rapid.StringMatching(`[a-z][a-z0-9-]{0,12}`),
			func(s string) string { return s },
		).Draw(t, "names")

		entries := make([]PluginEntry, len(names))
		for i, name := range names {
			entries[i] = PluginEntry{Name: name, Source: fmt.Sprintf("./%s", name)}
		}

		out, err := Assemble(&Marketplace{Name: "mp"}, entries)
		require.NoError(t, err)

		for i := 1; i < len(out.Plugins); i++ {
			if out.Plugins[i-1].Name > out.Plugins[i].Name {
				t.Fatalf("entries out of order: %q > %q", out.Plugins[i-1].Name, out.Plugins[i].Name)
			}
		}
	})
}

func entryNames(entries []PluginEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
