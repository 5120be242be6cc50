package search

import (
	"sort"
	"strings"

	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/sahilm/fuzzy"
)

// Result represents a search result
type Result struct {
	Entry marketplace.PluginEntry
	Score int // Higher is better
}

// entrySearchable wraps catalog entries for fuzzy searching
type entrySearchable struct {
	Entries []marketplace.PluginEntry
}

// String returns the searchable string for an entry
func (s entrySearchable) String(i int) string {
	entry := s.Entries[i]
	parts := []string{entry.Name}

	if entry.Description != "" {
		parts = append(parts, entry.Description)
	}

	parts = append(parts, entry.Tags...)
	parts = append(parts, entry.Keywords...)

	if entry.Category != "" {
		parts = append(parts, entry.Category)
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// Len returns the number of entries
func (s entrySearchable) Len() int {
	return len(s.Entries)
}

// Fuzzy performs a fuzzy search across the catalog entries
func Fuzzy(entries []marketplace.PluginEntry, query string) []Result {
	searchable := entrySearchable{Entries: entries}
	matches := fuzzy.FindFrom(strings.ToLower(query), searchable)

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		results = append(results, Result{
			Entry: entries[match.Index],
			Score: match.Score,
		})
	}

	// Sort by score (descending)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Simple performs a simple substring search
func Simple(entries []marketplace.PluginEntry, query string) []Result {
	var results []Result
	query = strings.ToLower(query)

	for _, entry := range entries {
		if matchesQuery(entry, query) {
			results = append(results, Result{
				Entry: entry,
				Score: 100, // Default score for simple matches
			})
		}
	}

	return results
}

// matchesQuery checks if an entry matches the search query
func matchesQuery(entry marketplace.PluginEntry, query string) bool {
	if strings.Contains(strings.ToLower(entry.Name), query) {
		return true
	}

	if strings.Contains(strings.ToLower(entry.Description), query) {
		return true
	}

	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	for _, keyword := range entry.Keywords {
		if strings.Contains(strings.ToLower(keyword), query) {
			return true
		}
	}

	return strings.Contains(strings.ToLower(entry.Category), query)
}
