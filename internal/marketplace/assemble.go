package marketplace

import (
	"fmt"
	"sort"
)

// DuplicateNameError reports two plugin directories claiming the same
// plugin name. Silent shadowing would corrupt catalog identity, so this
// aborts the run.
type DuplicateNameError struct {
	Name    string
	SourceA string
	SourceB string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate plugin name %q: claimed by both %s and %s", e.Name, e.SourceA, e.SourceB)
}

// Assemble merges the previous catalog's header with a freshly derived
// entry list. The header passes through unchanged; the plugins list is
// always replaced wholesale, sorted ascending by name. Entries are
// compared bytewise, so the order is total once names are unique.
func Assemble(prev *Marketplace, entries []PluginEntry) (*Marketplace, error) {
	sorted := make([]PluginEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Name == sorted[i-1].Name {
			return nil, &DuplicateNameError{
				Name:    sorted[i].Name,
				SourceA: sorted[i-1].Source,
				SourceB: sorted[i].Source,
			}
		}
	}

	next := *prev
	next.Plugins = sorted
	return &next, nil
}
