package search

import (
	"testing"

	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []marketplace.PluginEntry {
	return []marketplace.PluginEntry{
		{Name: "code-formatter", Source: "./code-formatter", Description: "Formats source files", Keywords: []string{"style"}},
		{Name: "review-helper", Source: "./review-helper", Description: "Automates code review", Tags: []string{"review"}},
		{Name: "deploy-kit", Source: "./deploy-kit", Description: "Deployment workflows", Category: "ops"},
	}
}

func TestFuzzy_MatchesAcrossFields(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantName string
	}{
		{"ByName", "formatter", "code-formatter"},
		{"ByTag", "review", "review-helper"},
		{"ByCategory", "ops", "deploy-kit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Fuzzy(testEntries(), tt.query)
			require.NotEmpty(t, results)
			assert.Equal(t, tt.wantName, results[0].Entry.Name)
		})
	}
}

func TestFuzzy_NoMatches(t *testing.T) {
	results := Fuzzy(testEntries(), "zzzzzz")
	assert.Empty(t, results)
}

func TestSimple_SubstringOnly(t *testing.T) {
	results := Simple(testEntries(), "code")
	require.Len(t, results, 2)

	// Not fuzzy: scattered letters must not match.
	assert.Empty(t, Simple(testEntries(), "cdfmt"))
}

func TestSimple_CaseInsensitive(t *testing.T) {
	results := Simple(testEntries(), "DEPLOY")
	require.Len(t, results, 1)
	assert.Equal(t, "deploy-kit", results[0].Entry.Name)
}
