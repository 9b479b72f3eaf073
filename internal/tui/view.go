package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the latest frame delivered by the registry.
func (m Model) View() string {
	if m.unmount {
		return ""
	}

	status := statusStyle.Render(fmt.Sprintf("theme: %s • changes: %d", m.registry.Selector(), m.frame.changes))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.frame.page,
		status,
		helpStyle.Render(m.help.View(m.keys)),
	)
}
