package view

import (
	"strings"

	"smscctl/internal/operator"
	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	saveLabel   = "Save"
	savingLabel = "Saving…"
)

// renderEditorDialog draws the create/edit dialog centred over the screen.
// The dialog mirrors the store's editor session; the inputs only hold the
// text being typed.
func renderEditorDialog(m *model.Model) string {
	ed := m.Store.Editor()

	var b strings.Builder
	b.WriteString(design.TitleStyle.Render(ed.Title()))
	b.WriteString("\n")

	if ed.Mode == operator.ModeEdit {
		if op, ok := m.Store.Find(ed.TargetID); ok {
			meta := design.TextSecondaryStyle.Render("ID " + op.ID.String() + "  •  ")
			b.WriteString(meta + design.GetStatusStyle(op.Status).Render(op.Status))
			b.WriteString("\n\n")
		}
	}

	for i, f := range operator.Fields() {
		if i >= len(m.Inputs) {
			break
		}
		style := design.InputStyle
		switch {
		case ed.Error != "" && ed.ErrorField == f:
			style = design.InputErrorStyle
		case i == m.FocusIndex:
			style = design.InputFocusedStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			design.LabelStyle.Render(f.Label()),
			style.Width(design.InputWidth).Render(m.Inputs[i].View()),
		)
		b.WriteString(row)
		b.WriteString("\n")
		if ed.Error != "" && ed.ErrorField == f {
			b.WriteString(design.TextErrorStyle.Render(SafeIcon(IconWarning) + ed.Error))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderSaveButton(m, ed.Submitting))

	dialog := design.DialogStyle.Width(design.DialogWidth).Render(b.String())
	status := renderStatusBar(m)

	height := m.Height - lipgloss.Height(status)
	if height < 0 {
		height = 0
	}
	body := lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, dialog)
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

// renderSaveButton shows Save, or a disabled Saving… while a write is in flight.
func renderSaveButton(m *model.Model, submitting bool) string {
	switch {
	case submitting:
		return design.ButtonDisabledStyle.Render(SafeIcon(IconHourglass) + savingLabel)
	case m.SaveFocused():
		return design.ButtonFocusedStyle.Render(saveLabel)
	default:
		return design.ButtonStyle.Render(saveLabel)
	}
}
