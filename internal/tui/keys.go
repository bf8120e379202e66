package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// pickerKeys are the bindings of the category list.
type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func newPickerKeys() pickerKeys {
	return pickerKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// converterKeys are the bindings of the converter view.
type converterKeys struct {
	Record    key.Binding
	Swap      key.Binding
	Reset     key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	PrevUnit  key.Binding
	NextUnit  key.Binding
	Shortcut  key.Binding
	ClearHist key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func newConverterKeys() converterKeys {
	return converterKeys{
		Record:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save to history")),
		Swap:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		PrevUnit:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev unit")),
		NextUnit:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next unit")),
		Shortcut: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "quick conversion"),
		),
		ClearHist: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear history")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "categories")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k converterKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Swap, k.Reset, k.NextFocus, k.PrevUnit, k.NextUnit, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k converterKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Record, k.Swap, k.Reset, k.ClearHist},
		{k.NextFocus, k.PrevFocus, k.PrevUnit, k.NextUnit, k.Shortcut},
		{k.Back, k.Quit},
	}
}
