package view

import (
	"smscctl/internal/notify"
	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar shows the current notification, or the key help when the
// slot is empty.
func renderStatusBar(m *model.Model) string {
	width := m.Width - design.AppStyle.GetHorizontalFrameSize()
	if width < 0 {
		width = 0
	}

	n := m.Store.Notification()
	if !n.Visible {
		keys := m.Keys.ShortHelp()
		if m.CurrentAppMode == model.ModeEditor {
			keys = m.Keys.EditorHelp()
		}
		return design.StatusBarStyle.Copy().Width(width).Render(m.Help.ShortHelpView(keys))
	}

	style, icon := notificationStyle(n.Severity)
	return style.Copy().Width(width).Render(SafeIcon(icon) + n.Message)
}

func notificationStyle(s notify.Severity) (lipgloss.Style, string) {
	switch s {
	case notify.SeveritySuccess:
		return design.StatusBarSuccessStyle, IconCheck
	case notify.SeverityError:
		return design.StatusBarErrorStyle, IconCross
	case notify.SeverityWarning:
		return design.StatusBarWarningStyle, IconWarning
	default:
		return design.StatusBarInfoStyle, IconInfo
	}
}
