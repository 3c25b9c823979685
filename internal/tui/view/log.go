package view

import (
	"strings"

	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// LogOverlayTitleHeight is the number of rows the overlay title takes,
// including its bottom margin.
const LogOverlayTitleHeight = 2

// LogOverlaySize is the outer size of the activity log overlay.
func LogOverlaySize(width, height int) (int, int) {
	return int(float64(width) * 0.8), int(float64(height) * 0.7)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

// styleLogLine picks a style from the level marker in the line.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}

func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	w, h := LogOverlaySize(m.Width, m.Height)

	var body string
	if len(m.ActivityLog) == 0 {
		body = design.EmptyStateStyle.Render("No activity yet.")
	} else {
		body = m.LogViewport.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	overlay := design.LogOverlayStyle.Copy().
		Width(max(0, w-design.LogOverlayStyle.GetHorizontalFrameSize())).
		Height(max(0, h-design.LogOverlayStyle.GetVerticalFrameSize())).
		Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
}
