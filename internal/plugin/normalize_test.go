package plugin

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_SourceFromLocation(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name       string
		rel        string
		wantSource string
	}{
		{
			name:       "TopLevelPlugin",
			rel:        "alpha/.claude-plugin/plugin.json",
			wantSource: "./alpha",
		},
		{
			name:       "NestedPlugin",
			rel:        "tools/format/beta/.claude-plugin/plugin.json",
			wantSource: "./tools/format/beta",
		},
		{
			name:       "RootPlugin",
			rel:        ".claude-plugin/plugin.json",
			wantSource: "./",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Source is derived from the filesystem location, so a
			// "source" field inside the manifest must be ignored.
			path := writeFile(t, root, tt.rel, `{"name": "demo", "source": "./somewhere-else"}`)

			entry, err := Normalize(root, path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, entry.Source)
		})
	}
}

func TestNormalize_OmitEmptyRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "sparse/.claude-plugin/plugin.json", `{
		"name": "sparse",
		"keywords": [],
		"description": "",
		"hooks": null
	}`)

	entry, err := Normalize(root, path)
	require.NoError(t, err)

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))

	assert.Equal(t, 2, len(keys), "only name and source may appear, got %s", data)
	assert.Contains(t, keys, "name")
	assert.Contains(t, keys, "source")
	assert.NotContains(t, keys, "keywords")
	assert.NotContains(t, keys, "description")
	assert.NotContains(t, keys, "hooks")
}

func TestNormalize_CopiesFieldsVerbatim(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "full/.claude-plugin/plugin.json", `{
		"name": "full",
		"version": "0.3.1",
		"description": "does everything",
		"author": "Jin <jin@example.com>",
		"license": "MIT",
		"homepage": "https://example.com",
		"repository": "https://github.com/example/full",
		"keywords": ["a", "b"],
		"commands": ["./commands/one.md", "./commands/two.md"],
		"mcpServers": {"server": {"command": "npx"}}
	}`)

	entry, err := Normalize(root, path)
	require.NoError(t, err)

	assert.Equal(t, "full", entry.Name)
	assert.Equal(t, "./full", entry.Source)
	assert.Equal(t, "0.3.1", entry.Version)
	assert.Equal(t, "does everything", entry.Description)
	assert.Equal(t, "MIT", entry.License)
	assert.Equal(t, []string{"a", "b"}, entry.Keywords)
	assert.JSONEq(t, `"Jin <jin@example.com>"`, string(entry.Author))
	assert.JSONEq(t, `["./commands/one.md", "./commands/two.md"]`, string(entry.Commands))
	assert.JSONEq(t, `{"server": {"command": "npx"}}`, string(entry.MCPServers))
}

func TestNormalize_MissingName_ReturnsSkippableError(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "wip/.claude-plugin/plugin.json", `{"description": "no name yet"}`)

	_, err := Normalize(root, path)
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestNormalize_InvalidJSON_ReturnsParseError(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "broken/.claude-plugin/plugin.json", `{"name": "broken",`)

	_, err := Normalize(root, path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestNormalize_UnreadableFile_Fails(t *testing.T) {
	root := t.TempDir()
	_, err := Normalize(root, filepath.Join(root, "gone", ".claude-plugin", "plugin.json"))
	assert.Error(t, err)
}
