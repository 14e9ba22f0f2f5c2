package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	toastBaseStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(toastWidth)
	toastSuccessStyle = toastBaseStyle.BorderForeground(lipgloss.Color("10"))
	toastErrorStyle   = toastBaseStyle.BorderForeground(lipgloss.Color("9"))

	pageStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false)
	printBlankStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
)
