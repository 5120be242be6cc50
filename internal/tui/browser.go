package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/egoavara/market-forge/internal/i18n"
	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/sahilm/fuzzy"
)

// Model is the bubbletea model for the catalog browser
type Model struct {
	catalog     *marketplace.Marketplace
	entries     []marketplace.PluginEntry
	filtered    []marketplace.PluginEntry
	cursor      int
	width       int
	height      int
	searchInput textinput.Model
	quitting    bool
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// NewModel creates a new browser model over a loaded catalog
func NewModel(catalog *marketplace.Marketplace) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 50
	ti.Width = 30

	return Model{
		catalog:     catalog,
		entries:     catalog.Plugins,
		filtered:    catalog.Plugins,
		searchInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// If search has text, clear it; otherwise quit
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "backspace":
		val := m.searchInput.Value()
		if len(val) > 0 {
			m.searchInput.SetValue(val[:len(val)-1])
			m.applyFilter()
		}

	default:
		// Any other printable character goes to search
		if len(msg.String()) == 1 && msg.String()[0] >= 32 && msg.String()[0] < 127 {
			m.searchInput.SetValue(m.searchInput.Value() + msg.String())
			m.applyFilter()
		}
	}

	return m, nil
}

func (m *Model) applyFilter() {
	query := m.searchInput.Value()
	if query == "" {
		m.filtered = m.entries
		if m.cursor >= len(m.filtered) {
			m.cursor = max(0, len(m.filtered)-1)
		}
		return
	}

	// Build searchable strings
	searchables := make([]string, len(m.entries))
	for i, entry := range m.entries {
		parts := []string{entry.Name}
		if entry.Description != "" {
			parts = append(parts, entry.Description)
		}
		parts = append(parts, entry.Tags...)
		parts = append(parts, entry.Keywords...)
		searchables[i] = strings.ToLower(strings.Join(parts, " "))
	}

	matches := fuzzy.Find(strings.ToLower(query), searchables)
	m.filtered = make([]marketplace.PluginEntry, len(matches))
	for i, match := range matches {
		m.filtered[i] = m.entries[match.Index]
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Header
	header := titleStyle.Render(i18n.T("TUIHeader", map[string]any{
		"Name":  m.catalog.Name,
		"Count": len(m.entries),
	}))
	b.WriteString(header)
	b.WriteString("\n\n")

	// Calculate layout
	listWidth := 40
	previewWidth := max(30, m.width-listWidth-6)
	listHeight := max(5, m.height-8)

	// Build list
	var listLines []string
	for i, entry := range m.filtered {
		listLines = append(listLines, m.renderItem(i, entry))
	}

	// Paginate if needed
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(listLines))

	visibleList := strings.Join(listLines[start:end], "\n")

	// Build preview
	preview := m.renderPreview()

	// Combine list and preview horizontally
	listBox := lipgloss.NewStyle().Width(listWidth).Render(visibleList)
	previewBox := previewStyle.Width(previewWidth).Height(listHeight).Render(preview)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listBox, "  ", previewBox)
	b.WriteString(content)
	b.WriteString("\n\n")

	// Search bar (always visible)
	searchQuery := m.searchInput.Value()
	if searchQuery != "" {
		b.WriteString("> " + searchQuery + "_")
	} else {
		b.WriteString(helpStyle.Render("> type to filter..."))
	}
	b.WriteString("\n")

	// Help
	help := helpStyle.Render("↑/↓: move | Esc: clear/quit")
	b.WriteString(help)

	return b.String()
}

func (m Model) renderItem(idx int, entry marketplace.PluginEntry) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = "> "
	}

	version := entry.Version
	if version == "" {
		version = "latest"
	}

	text := fmt.Sprintf("%s%s (v%s)", cursor, entry.Name, version)

	if idx == m.cursor {
		return selectedStyle.Render(text)
	}
	return normalStyle.Render(text)
}

func (m Model) renderPreview() string {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return i18n.T("TUIPreviewEmpty", nil)
	}

	entry := m.filtered[m.cursor]

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Name: %s\n", entry.Name))
	b.WriteString(sourceStyle.Render(fmt.Sprintf("Source: %s", entry.Source)) + "\n")

	version := entry.Version
	if version == "" {
		version = "latest"
	}
	b.WriteString(fmt.Sprintf("Version: %s\n", version))
	b.WriteString("\n")

	if entry.Description != "" {
		b.WriteString(fmt.Sprintf("Description:\n  %s\n\n", entry.Description))
	}

	if entry.Category != "" {
		b.WriteString(fmt.Sprintf("Category: %s\n", entry.Category))
	}

	if len(entry.Tags) > 0 {
		b.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(entry.Tags, ", ")))
	}

	if len(entry.Keywords) > 0 {
		b.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(entry.Keywords, ", ")))
	}

	if entry.License != "" {
		b.WriteString(fmt.Sprintf("License: %s\n", entry.License))
	}

	if entry.Homepage != "" {
		b.WriteString(fmt.Sprintf("Homepage: %s\n", entry.Homepage))
	}

	return b.String()
}

// Browse launches the interactive catalog browser
func Browse(catalog *marketplace.Marketplace) error {
	if len(catalog.Plugins) == 0 {
		return fmt.Errorf("%s", i18n.T("NoPluginsAvailable", nil))
	}

	model := NewModel(catalog)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
