package view

import (
	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay lists every key binding in columns.
func renderHelpOverlay(m *model.Model) string {
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	width := lipgloss.Width(body)

	title := design.CenterHorizontal(width, design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS"))
	footer := design.CenterHorizontal(width, design.TextSecondaryStyle.Render("Esc or h to close"))

	container := design.CenteredOverlayContainerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body, "", footer),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}
