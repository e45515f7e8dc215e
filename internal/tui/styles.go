package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("69")
	colorMuted   = lipgloss.Color("241")
	colorError   = lipgloss.Color("203")
	colorSuccess = lipgloss.Color("78")
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(colorAccent)

	buttonStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorMuted)
	focusedButtonStyle = buttonStyle.BorderForeground(colorAccent).Foreground(colorAccent).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
	labelStyle = lipgloss.NewStyle().Width(13)
)

func gray(s string) string {
	return mutedStyle.Render(s)
}
