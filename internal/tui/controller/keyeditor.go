package controller

import (
	"errors"

	"smscctl/internal/console"
	"smscctl/internal/operator"
	"smscctl/internal/tui/model"
	"smscctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgEditor processes key presses while the create/edit dialog is
// open. Enter/Ctrl+S submits, Esc cancels, Tab cycles focus, and every other
// keystroke goes to the focused input and from there into the draft.
func handleKeyMsgEditor(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		m.Store.CloseEditor()
		m.CurrentAppMode = model.ModeOperatorList
		m.Inputs = nil
		m.EditorSession = 0
		return m, nil

	case key.Matches(keyMsg, m.Keys.NextField):
		return m, m.FocusInput(m.FocusIndex + 1)

	case key.Matches(keyMsg, m.Keys.PrevField):
		return m, m.FocusInput(m.FocusIndex - 1)

	case key.Matches(keyMsg, m.Keys.Submit):
		return submitEditor(m)
	}

	if m.SaveFocused() || m.FocusIndex >= len(m.Inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.Inputs[m.FocusIndex], cmd = m.Inputs[m.FocusIndex].Update(keyMsg)
	field := operator.Fields()[m.FocusIndex]
	m.Store.SetField(field, m.Inputs[m.FocusIndex].Value())
	return m, cmd
}

func submitEditor(m *model.Model) (*model.Model, tea.Cmd) {
	cmd, err := m.Controller.Submit()
	if err == nil {
		return m, cmd
	}

	var verr *operator.ValidationError
	switch {
	case errors.As(err, &verr):
		// The message is shown inline next to the offending field.
		return m, m.FocusInput(fieldIndex(verr.Field))
	case errors.Is(err, console.ErrWriteInFlight):
		// Save is disabled while a write is unsettled.
		return m, nil
	default:
		logging.Warn(subsystem, "Submit rejected: %v", err)
		return m, nil
	}
}

func fieldIndex(f operator.Field) int {
	for i, candidate := range operator.Fields() {
		if candidate == f {
			return i
		}
	}
	return 0
}
