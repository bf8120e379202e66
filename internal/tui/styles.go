package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles.
//
//nolint:gochecknoglobals // Immutable lipgloss styles shared across views.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// tailwindColors maps the palette names used in category gradients to hex colors.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tailwindColors = map[string]string{
	"yellow-400": "#facc15",
	"yellow-500": "#eab308",
	"amber-400":  "#fbbf24",
	"amber-500":  "#f59e0b",
	"orange-400": "#fb923c",
	"orange-500": "#f97316",
	"orange-600": "#ea580c",
	"red-500":    "#ef4444",
}

const defaultAccent = "214"

// accentColor picks the first "from-" color of a gradient description.
func accentColor(gradient string) lipgloss.Color {
	for _, token := range strings.Fields(gradient) {
		name, ok := strings.CutPrefix(token, "from-")
		if !ok {
			continue
		}
		if hex, known := tailwindColors[name]; known {
			return lipgloss.Color(hex)
		}
	}
	return lipgloss.Color(defaultAccent)
}

// headerStyle returns the title style tinted for a category.
func headerStyle(gradient string) lipgloss.Style {
	return titleStyle.Foreground(accentColor(gradient))
}

// focusStyle renders a field label, highlighted when focused.
func focusStyle(focused bool, gradient string) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(accentColor(gradient))
	}
	return subtleStyle
}
