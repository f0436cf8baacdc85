package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	user       lipgloss.Style
	label      lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func stateColor(state sessionState) lipgloss.Color {
	switch state {
	case stateActive:
		return lipgloss.Color("114")
	case stateExpiring:
		return lipgloss.Color("214")
	case stateExpired:
		return lipgloss.Color("203")
	default:
		return lipgloss.Color("244")
	}
}

func (s styles) stateBadge(state sessionState) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(stateColor(state))
}

func (s styles) frame(state sessionState) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(stateColor(state)).
		Padding(0, 1)
}
