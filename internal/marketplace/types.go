package marketplace

import (
	"bytes"
	"encoding/json"
	"sort"
)

const (
	// ManifestDir is the directory containing marketplace.json
	ManifestDir = ".claude-plugin"
	// ManifestFile is the marketplace manifest filename
	ManifestFile = "marketplace.json"
)

// Marketplace represents the .claude-plugin/marketplace.json structure.
// Owner is kept as raw JSON because authors write it either as a bare
// string or as a {name, email, url} object; the catalog never interprets
// it, only carries it. Extra holds unknown top-level keys so they survive
// regeneration.
type Marketplace struct {
	Name        string
	Owner       json.RawMessage
	Description string
	Version     string
	PluginRoot  string
	Extra       map[string]json.RawMessage
	Plugins     []PluginEntry
}

// PluginEntry represents a plugin entry in the marketplace.
// Author and the component-reference fields (commands, agents, hooks,
// mcpServers, skills) are raw JSON: a string, object, or array as
// authored, passed through verbatim.
type PluginEntry struct {
	Name        string          `json:"name"`
	Source      string          `json:"source"`
	Version     string          `json:"version,omitempty"`
	Description string          `json:"description,omitempty"`
	Author      json.RawMessage `json:"author,omitempty"`
	Homepage    string          `json:"homepage,omitempty"`
	Repository  string          `json:"repository,omitempty"`
	License     string          `json:"license,omitempty"`
	Keywords    []string        `json:"keywords,omitempty"`
	Category    string          `json:"category,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Commands    json.RawMessage `json:"commands,omitempty"`
	Agents      json.RawMessage `json:"agents,omitempty"`
	Hooks       json.RawMessage `json:"hooks,omitempty"`
	MCPServers  json.RawMessage `json:"mcpServers,omitempty"`
	Skills      json.RawMessage `json:"skills,omitempty"`
}

// knownKeys are the top-level marketplace keys with dedicated fields.
var knownKeys = map[string]bool{
	"name":        true,
	"owner":       true,
	"description": true,
	"version":     true,
	"pluginRoot":  true,
	"plugins":     true,
}

// UnmarshalJSON decodes a marketplace document, routing unknown
// top-level keys into Extra.
func (m *Marketplace) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["name"]; ok {
		if err := json.Unmarshal(raw, &m.Name); err != nil {
			return err
		}
	}
	if raw, ok := fields["description"]; ok {
		if err := json.Unmarshal(raw, &m.Description); err != nil {
			return err
		}
	}
	if raw, ok := fields["version"]; ok {
		if err := json.Unmarshal(raw, &m.Version); err != nil {
			return err
		}
	}
	if raw, ok := fields["pluginRoot"]; ok {
		if err := json.Unmarshal(raw, &m.PluginRoot); err != nil {
			return err
		}
	}
	if raw, ok := fields["owner"]; ok {
		m.Owner = raw
	}
	if raw, ok := fields["plugins"]; ok {
		if err := json.Unmarshal(raw, &m.Plugins); err != nil {
			return err
		}
	}

	for key, raw := range fields {
		if knownKeys[key] {
			continue
		}
		if m.Extra == nil {
			m.Extra = make(map[string]json.RawMessage)
		}
		m.Extra[key] = raw
	}

	return nil
}

// MarshalJSON encodes the marketplace with a fixed key order: name,
// owner, description, version, pluginRoot, extra keys sorted, plugins
// last. The fixed order keeps serialization deterministic so content
// digests are comparable across runs.
func (m Marketplace) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	field := func(key string, value any) error {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		keyData, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		buf.Write(data)
		return nil
	}

	if err := field("name", m.Name); err != nil {
		return nil, err
	}
	if len(m.Owner) > 0 {
		if err := field("owner", m.Owner); err != nil {
			return nil, err
		}
	}
	if m.Description != "" {
		if err := field("description", m.Description); err != nil {
			return nil, err
		}
	}
	if m.Version != "" {
		if err := field("version", m.Version); err != nil {
			return nil, err
		}
	}
	if m.PluginRoot != "" {
		if err := field("pluginRoot", m.PluginRoot); err != nil {
			return nil, err
		}
	}

	extraKeys := make([]string, 0, len(m.Extra))
	for key := range m.Extra {
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		if err := field(key, m.Extra[key]); err != nil {
			return nil, err
		}
	}

	plugins := m.Plugins
	if plugins == nil {
		plugins = []PluginEntry{}
	}
	if err := field("plugins", plugins); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FindPlugin finds a plugin by name in the manifest
func (m *Marketplace) FindPlugin(name string) *PluginEntry {
	for i := range m.Plugins {
		if m.Plugins[i].Name == name {
			return &m.Plugins[i]
		}
	}
	return nil
}

// OwnerName extracts a display name from the raw owner value,
// whichever shape it was authored in.
func (m *Marketplace) OwnerName() string {
	if len(m.Owner) == 0 {
		return ""
	}

	var name string
	if err := json.Unmarshal(m.Owner, &name); err == nil {
		return name
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(m.Owner, &obj); err == nil {
		return obj.Name
	}
	return ""
}
