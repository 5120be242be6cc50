package plugin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// ManifestDir is the directory containing plugin.json
	ManifestDir = ".claude-plugin"
	// ManifestFile is the plugin manifest filename
	ManifestFile = "plugin.json"
)

// ErrMissingName marks a manifest whose name field is absent, empty, or
// not a string. A plugin-in-progress without a name is skipped with a
// warning rather than failing the whole run.
var ErrMissingName = errors.New("manifest has no usable name")

// ParseError reports a manifest that is not syntactically valid JSON.
// A corrupt manifest means a broken plugin that must be fixed, so this
// is fatal to the run rather than silently skipped.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Manifest is the decoded .claude-plugin/plugin.json content. Name is
// the only field this tool interprets; everything else is carried as
// raw JSON exactly as the plugin author wrote it (author may be a
// string or an object, component references may be a string, object,
// or array).
type Manifest struct {
	Name   string
	Fields map[string]json.RawMessage
}

// ParseManifest decodes manifest bytes. Invalid JSON returns a
// ParseError; valid JSON without a usable name returns ErrMissingName.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	raw, ok := fields["name"]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingName, path)
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil || name == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingName, path)
	}

	return &Manifest{Name: name, Fields: fields}, nil
}

// String returns the field as a string when the author wrote a JSON
// string, and "" otherwise.
func (m *Manifest) String(key string) string {
	raw, ok := m.Fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// StringList returns the field as a string slice when the author wrote
// an array of strings, and nil otherwise. Empty arrays collapse to nil.
func (m *Manifest) StringList(key string) []string {
	raw, ok := m.Fields[key]
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
		return nil
	}
	return list
}

// Raw returns the field verbatim, or nil when the field is absent or
// empty. Empty string, empty array, and JSON null all count as empty so
// they never surface as keys in the catalog.
func (m *Manifest) Raw(key string) json.RawMessage {
	raw, ok := m.Fields[key]
	if !ok || isEmptyValue(raw) {
		return nil
	}
	return raw
}

func isEmptyValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return true
	case bytes.Equal(trimmed, []byte("null")):
		return true
	case bytes.Equal(trimmed, []byte(`""`)):
		return true
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return false
	}
	return compact.String() == "[]"
}
