package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/egoavara/market-forge/internal/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *marketplace.Marketplace {
	return &marketplace.Marketplace{
		Name: "acme-plugins",
		Plugins: []marketplace.PluginEntry{
			{Name: "alpha", Source: "./alpha", Description: "first"},
			{Name: "beta", Source: "./beta", Description: "second"},
			{Name: "gamma", Source: "./gamma", Keywords: []string{"graphics"}},
		},
	}
}

func TestModel_FilterNarrowsList(t *testing.T) {
	m := NewModel(testCatalog())
	require.Len(t, m.filtered, 3)

	m.searchInput.SetValue("gam")
	m.applyFilter()

	require.Len(t, m.filtered, 1)
	assert.Equal(t, "gamma", m.filtered[0].Name)
}

func TestModel_EscClearsFilterBeforeQuitting(t *testing.T) {
	m := NewModel(testCatalog())
	m.searchInput.SetValue("alp")
	m.applyFilter()
	require.Len(t, m.filtered, 1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Nil(t, cmd, "first esc only clears the filter")
	assert.Len(t, m.filtered, 3)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.NotNil(t, cmd, "second esc quits")
	assert.True(t, m.quitting)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m := NewModel(testCatalog())

	for i := 0; i < 10; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(Model)
	}
	assert.Equal(t, 2, m.cursor)

	for i := 0; i < 10; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(Model)
	}
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ViewShowsSelectedEntry(t *testing.T) {
	m := NewModel(testCatalog())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "./alpha")
}

func TestBrowse_EmptyCatalogFails(t *testing.T) {
	err := Browse(&marketplace.Marketplace{Name: "empty"})
	assert.Error(t, err)
}
