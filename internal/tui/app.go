// Package tui implements the interactive converter: a category list and a
// per-category converter view with live results and recent history.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/unitconv/internal/units"
)

// ViewState identifies the active screen.
type ViewState int

const (
	// ViewPicker is the category list.
	ViewPicker ViewState = iota
	// ViewConverter is the converter for one category.
	ViewConverter
)

// Model is the top-level Bubble Tea model.
type Model struct {
	state     ViewState
	picker    *PickerModel
	converter *ConverterModel
	opts      []ConverterOption
	quitting  bool
}

// New creates the app. An empty initialCategory opens the category list;
// an unknown one opens the list with a "category not found" banner.
func New(initialCategory string, opts ...ConverterOption) *Model {
	m := &Model{opts: opts}

	if initialCategory == "" {
		m.picker = NewPickerModel("")
		return m
	}

	c, ok := units.GetCategoryByID(initialCategory)
	if !ok {
		m.picker = NewPickerModel(fmt.Sprintf("%s: %s", units.ErrCategoryNotFound, initialCategory))
		return m
	}

	m.picker = NewPickerModel("")
	m.picker.Focus(c.ID)
	m.openConverter(c)
	return m
}

func (m *Model) openConverter(c units.Category) {
	m.converter = NewConverterModel(c, m.opts...)
	m.state = ViewConverter
}

// State returns the active screen.
func (m *Model) State() ViewState {
	return m.state
}

// Converter returns the converter view, or nil on the category list.
func (m *Model) Converter() *ConverterModel {
	if m.state != ViewConverter {
		return nil
	}
	return m.converter
}

// Picker returns the category list.
func (m *Model) Picker() *PickerModel {
	return m.picker
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categorySelectedMsg:
		if c, ok := units.GetCategoryByID(msg.id); ok {
			m.openConverter(c)
		}
		return m, nil

	case backMsg:
		m.state = ViewPicker
		if m.converter != nil {
			m.picker.Focus(m.converter.Category().ID)
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == ViewPicker && key.Matches(msg, m.picker.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.state == ViewConverter {
		cmd := m.converter.Update(msg)
		return m, cmd
	}
	return m, m.picker.Update(msg)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == ViewConverter {
		return m.converter.View()
	}
	return m.picker.View()
}

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive converter: %w", err)
	}
	return nil
}
