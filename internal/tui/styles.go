package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)
