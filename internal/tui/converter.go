package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/unitconv/internal/conversion"
	"github.com/rshade/unitconv/internal/history"
	"github.com/rshade/unitconv/internal/units"
)

// HistoryStore is the part of history.Store the converter uses.
type HistoryStore interface {
	Add(r conversion.Result) (history.Entry, error)
	Recent(category string, limit int) []history.Entry
	Clear()
	Save() error
}

// backMsg asks the app to return to the category list.
type backMsg struct{}

type focusField int

const (
	focusValue focusField = iota
	focusFrom
	focusTo
	focusFieldCount
)

// numericRunes are the characters the value field accepts.
const numericRunes = "0123456789.-+eE"

// ConverterOption configures a ConverterModel.
type ConverterOption func(*ConverterModel)

// WithHistory attaches a history store. recentLimit bounds the history pane.
func WithHistory(store HistoryStore, recentLimit int) ConverterOption {
	return func(m *ConverterModel) {
		m.history = store
		if recentLimit > 0 {
			m.recentLimit = recentLimit
		}
	}
}

// WithClock overrides the time source used for relative timestamps.
func WithClock(now func() time.Time) ConverterOption {
	return func(m *ConverterModel) {
		m.now = now
	}
}

// WithLogger sets the logger for history persistence failures.
func WithLogger(l zerolog.Logger) ConverterOption {
	return func(m *ConverterModel) {
		m.logger = l
	}
}

// ConverterModel converts a typed value between two units of one category.
type ConverterModel struct {
	category  units.Category
	engine    *conversion.Engine
	unitIDs   []string
	shortcuts []conversion.CommonConversion

	input   textinput.Model
	fromIdx int
	toIdx   int
	focus   focusField

	output    string
	result    conversion.Result
	hasResult bool
	invalid   bool
	status    string

	history     HistoryStore
	recentLimit int
	now         func() time.Time
	logger      zerolog.Logger

	keys converterKeys
	help help.Model
}

// NewConverterModel creates a converter for c with the default unit pair
// selected and the value field focused.
func NewConverterModel(c units.Category, opts ...ConverterOption) *ConverterModel {
	input := textinput.New()
	input.Placeholder = "Enter value"
	input.Prompt = ""
	input.Focus()

	m := &ConverterModel{
		category:    c,
		engine:      conversion.NewEngine(c),
		unitIDs:     c.UnitIDs(),
		shortcuts:   conversion.GetCommonConversions(c.ID),
		input:       input,
		recentLimit: history.DefaultRecentLimit,
		now:         time.Now,
		logger:      zerolog.Nop(),
		keys:        newConverterKeys(),
		help:        help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.selectDefaults()
	return m
}

func (m *ConverterModel) selectDefaults() {
	from, to := m.category.DefaultPair()
	m.fromIdx = m.indexOf(from)
	m.toIdx = m.indexOf(to)
}

func (m *ConverterModel) indexOf(id string) int {
	for i, u := range m.unitIDs {
		if u == id {
			return i
		}
	}
	return 0
}

// Category returns the category being converted.
func (m *ConverterModel) Category() units.Category {
	return m.category
}

// FromUnit returns the selected source unit id.
func (m *ConverterModel) FromUnit() string {
	return m.unitIDs[m.fromIdx]
}

// ToUnit returns the selected target unit id.
func (m *ConverterModel) ToUnit() string {
	return m.unitIDs[m.toIdx]
}

// Input returns the raw value text.
func (m *ConverterModel) Input() string {
	return m.input.Value()
}

// Output returns the formatted result, or "" when there is none.
func (m *ConverterModel) Output() string {
	return m.output
}

// Invalid reports whether the value text failed to parse.
func (m *ConverterModel) Invalid() bool {
	return m.invalid
}

// SetInput replaces the value text and converts it.
func (m *ConverterModel) SetInput(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.recompute()
}

// Update handles key presses.
func (m *ConverterModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	if m.focus == focusValue && isInputKey(keyMsg) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(keyMsg)
		m.recompute()
		return cmd
	}

	return m.handleCommand(keyMsg)
}

//nolint:cyclop // One case per key binding.
func (m *ConverterModel) handleCommand(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		return func() tea.Msg { return backMsg{} }
	case key.Matches(msg, m.keys.Record):
		m.record()
	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus((m.focus + 1) % focusFieldCount)
	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus((m.focus + focusFieldCount - 1) % focusFieldCount)
	case key.Matches(msg, m.keys.Swap):
		m.Swap()
	case key.Matches(msg, m.keys.Reset):
		return m.Reset()
	case key.Matches(msg, m.keys.PrevUnit):
		m.cycleUnit(-1)
	case key.Matches(msg, m.keys.NextUnit):
		m.cycleUnit(1)
	case key.Matches(msg, m.keys.ClearHist):
		m.clearHistory()
	case key.Matches(msg, m.keys.Shortcut):
		m.applyShortcut(int(msg.Runes[0] - '1'))
	}
	return nil
}

// isInputKey reports whether msg edits the value field.
//
//nolint:exhaustive // Only editing keys are forwarded to the text input.
func isInputKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !strings.ContainsRune(numericRunes, r) {
				return false
			}
		}
		return len(msg.Runes) > 0
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlK, tea.KeyCtrlW:
		return true
	default:
		return false
	}
}

func (m *ConverterModel) setFocus(f focusField) tea.Cmd {
	m.focus = f
	if f == focusValue {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// recompute converts the current input with the selected units.
func (m *ConverterModel) recompute() {
	m.output, m.hasResult, m.invalid = "", false, false

	v, err := conversion.ParseValue(m.input.Value())
	if errors.Is(err, conversion.ErrEmptyInput) {
		return
	}
	if err != nil {
		m.invalid = true
		return
	}

	res, err := m.engine.Evaluate(v, m.FromUnit(), m.ToUnit())
	if err != nil {
		m.invalid = true
		return
	}
	m.result, m.hasResult = res, true
	m.output = conversion.FormatNumber(res.ToValue)
}

// Swap exchanges the units and feeds the previous output back in as input.
func (m *ConverterModel) Swap() {
	m.fromIdx, m.toIdx = m.toIdx, m.fromIdx
	m.SetInput(m.output)
}

// Reset clears the input and restores the default unit pair.
func (m *ConverterModel) Reset() tea.Cmd {
	m.selectDefaults()
	m.status = ""
	m.SetInput("")
	return m.setFocus(focusValue)
}

func (m *ConverterModel) cycleUnit(delta int) {
	n := len(m.unitIDs)
	switch m.focus {
	case focusFrom:
		m.fromIdx = (m.fromIdx + delta + n) % n
	case focusTo:
		m.toIdx = (m.toIdx + delta + n) % n
	default:
		return
	}
	m.recompute()
}

func (m *ConverterModel) applyShortcut(i int) {
	if i < 0 || i >= len(m.shortcuts) {
		return
	}
	s := m.shortcuts[i]
	m.fromIdx = m.indexOf(s.From)
	m.toIdx = m.indexOf(s.To)
	m.recompute()
}

// record stores the current result in history.
func (m *ConverterModel) record() {
	if m.history == nil || !m.hasResult || !m.result.Recordable() {
		return
	}
	if _, err := m.history.Add(m.result); err != nil {
		m.logger.Warn().Err(err).Msg("recording conversion failed")
		m.status = "could not record conversion"
		return
	}
	m.persist("saved to history")
}

func (m *ConverterModel) clearHistory() {
	if m.history == nil {
		return
	}
	m.history.Clear()
	m.persist("history cleared")
}

func (m *ConverterModel) persist(okStatus string) {
	if err := m.history.Save(); err != nil {
		m.logger.Warn().Err(err).Msg("saving history failed")
		m.status = "history not saved: " + err.Error()
		return
	}
	m.status = okStatus
}

// View renders the converter.
func (m *ConverterModel) View() string {
	var b strings.Builder
	accent := m.category.Gradient

	b.WriteString(headerStyle(accent).Render(m.category.Icon + "  " + m.category.Name))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.category.Description))
	b.WriteString("\n\n")

	b.WriteString(focusStyle(m.focus == focusValue, accent).Render("Value "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(focusStyle(m.focus == focusFrom, accent).Render("From  "))
	b.WriteString(m.unitLabel(m.FromUnit()))
	b.WriteString("\n")
	b.WriteString(focusStyle(m.focus == focusTo, accent).Render("To    "))
	b.WriteString(m.unitLabel(m.ToUnit()))
	b.WriteString("\n\n")

	switch {
	case m.invalid:
		b.WriteString(errorStyle.Render("invalid number"))
	case m.hasResult:
		b.WriteString(resultStyle.Render(fmt.Sprintf("= %s %s", m.output, m.engine.UnitSymbol(m.ToUnit()))))
	default:
		b.WriteString(subtleStyle.Render("type a value to convert"))
	}
	b.WriteString("\n\n")

	if len(m.shortcuts) > 0 {
		parts := make([]string, 0, len(m.shortcuts))
		for i, s := range m.shortcuts {
			parts = append(parts, fmt.Sprintf("%d %s", i+1, s.Label))
		}
		b.WriteString(subtleStyle.Render("Quick: " + strings.Join(parts, "  ")))
		b.WriteString("\n\n")
	}

	if pane := m.historyView(); pane != "" {
		b.WriteString(pane)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(subtleStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *ConverterModel) unitLabel(id string) string {
	return fmt.Sprintf("‹ %s (%s) ›", m.engine.UnitName(id), m.engine.UnitSymbol(id))
}

func (m *ConverterModel) historyView() string {
	if m.history == nil {
		return ""
	}
	entries := m.history.Recent(m.category.ID, m.recentLimit)
	if len(entries) == 0 {
		return ""
	}

	now := m.now()
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, titleStyle.Render("Recent"))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s → %s %s  %s",
			conversion.FormatHistoryValue(e.FromValue), m.engine.UnitSymbol(e.FromUnit),
			conversion.FormatHistoryValue(e.ToValue), m.engine.UnitSymbol(e.ToUnit),
			subtleStyle.Render(history.RelativeTime(e.Time(), now)),
		))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
