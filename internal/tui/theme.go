package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — restrained, interview-room neutral
var (
	primary = lipgloss.Color("#6366F1") // Indigo
	accent  = lipgloss.Color("#F59E0B") // Amber
	success = lipgloss.Color("#22C55E") // Green
	danger  = lipgloss.Color("#EF4444") // Red
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	timerLowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(danger)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	errStyle = lipgloss.NewStyle().
			Foreground(danger)

	ruleStyle = lipgloss.NewStyle().
			Foreground(border)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textDim)
)
