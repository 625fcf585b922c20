package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night inspired palette.
var (
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorWarning = lipgloss.Color("#e0af68")
	colorError   = lipgloss.Color("#f7768e")
	colorMuted   = lipgloss.Color("#565f89")
	colorFg      = lipgloss.Color("#c0caf5")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	labelFocusStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	optionOnStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	optionCursorStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	barFilledStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	barEmptyStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	badgeDoneStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)
