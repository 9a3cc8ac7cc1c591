// Package ui renders CLI reports: styled headers and aligned tables of
// bindings, conflicts and type descriptions.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Styler applies lipgloss styles, or nothing when color is off.
type Styler struct {
	color bool
}

func NewStyler(color bool) Styler { return Styler{color: color} }

func (s Styler) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// Title renders a section header.
func (s Styler) Title(text string) string {
	return s.render(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")), text)
}

// Status renders a short status word in its color.
func (s Styler) Status(status string) string {
	return s.render(styleStatus(status), status)
}

// Banner renders a boxed warning line.
func (s Styler) Banner(text string) string {
	if !s.color {
		return "!! " + text
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("3")).
		Padding(0, 1).
		Render(text)
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "ok", "cached", "bound":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error", "conflict":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "decoded", "merged":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
