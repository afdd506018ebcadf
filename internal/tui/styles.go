package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	text      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	muted     = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}
	danger    = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF6666"}
)

// Layout styles
var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(subtle)

	formPanelStyle = borderStyle.
			Padding(1, 2)

	displayPanelStyle = borderStyle.
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)
)

// Form styles
var (
	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			MarginBottom(1)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(muted)

	formLabelFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(highlight)

	formInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	formInputFocusedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(highlight).
				Padding(0, 1)

	formErrorStyle = lipgloss.NewStyle().
			Foreground(danger)

	buttonStyle = lipgloss.NewStyle().
			Foreground(text).
			Background(subtle).
			Padding(0, 2)

	buttonFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFDF5")).
				Background(highlight).
				Padding(0, 2)
)

// Text styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)
)
