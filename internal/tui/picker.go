package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/unitconv/internal/units"
)

// categorySelectedMsg asks the app to open the converter for a category.
type categorySelectedMsg struct {
	id string
}

// PickerModel lists the unit categories.
type PickerModel struct {
	categories []units.Category
	cursor     int
	banner     string
	keys       pickerKeys
	help       help.Model
}

// NewPickerModel creates the category list. A non-empty banner is shown
// above the list as an error.
func NewPickerModel(banner string) *PickerModel {
	return &PickerModel{
		categories: units.AllCategories(),
		banner:     banner,
		keys:       newPickerKeys(),
		help:       help.New(),
	}
}

// Selected returns the category under the cursor.
func (m *PickerModel) Selected() units.Category {
	return m.categories[m.cursor]
}

// Focus moves the cursor to the category with the given id, if present.
func (m *PickerModel) Focus(id string) {
	for i, c := range m.categories {
		if c.ID == id {
			m.cursor = i
			return
		}
	}
}

// Update handles key presses. Quitting is left to the caller.
func (m *PickerModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.banner = ""
		id := m.Selected().ID
		return func() tea.Msg { return categorySelectedMsg{id: id} }
	}
	return nil
}

// View renders the list.
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Unit Converter"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Pick a category"))
	b.WriteString("\n\n")

	if m.banner != "" {
		b.WriteString(errorStyle.Render(m.banner))
		b.WriteString("\n\n")
	}

	for i, c := range m.categories {
		line := fmt.Sprintf("%s  %-12s %s", c.Icon, c.Name, subtleStyle.Render(c.Description))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("%s  %-12s", c.Icon, c.Name)) + " " +
				headerStyle(c.Gradient).Render(c.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
