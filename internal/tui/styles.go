package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	plainStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hiddenStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	draftStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
