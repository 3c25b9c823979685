package view

import (
	"fmt"

	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the header line plus the status bar.
const chromeHeight = 2

// Render draws the whole screen for the current mode.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return m.QuittingMessage
	}
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeEditor:
		return renderEditorDialog(m)
	default:
		return renderMain(m)
	}
}

func renderMain(m *model.Model) string {
	page := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m),
		renderTable(m),
		renderStatusBar(m),
	)
	return design.AppStyle.Render(page)
}

func renderHeader(m *model.Model) string {
	title := design.HeaderStyle.Render(SafeIcon(IconSignal) + "Messaging Operators")

	meta := fmt.Sprintf("%d operators  •  %s", m.Store.Len(), m.GatewayURL)
	if m.Store.Busy() {
		meta = m.Spinner.View() + " " + meta
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, design.HeaderMetaStyle.Render(meta))
}
