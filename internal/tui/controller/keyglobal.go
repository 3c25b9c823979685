package controller

import (
	"encoding/json"
	"fmt"
	"strings"

	"smscctl/internal/console"
	"smscctl/internal/tui/model"
	"smscctl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests; the real clipboard needs a display.
var writeClipboard = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses outside the editor dialog: list
// navigation, the operator actions and the overlays.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Cancel):
			m.CurrentAppMode = model.ModeOperatorList
			return m, nil
		case key.Matches(keyMsg, m.Keys.Copy):
			if err := writeClipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
				logging.Error(subsystem, err, "Failed to copy logs")
				return m, m.Store.Notifications().Error("Copy logs failed")
			}
			return m, m.Store.Notifications().Success("Logs copied to clipboard")
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Cancel):
			m.CurrentAppMode = model.ModeOperatorList
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	// --- Operator list ------------------------------------------------------
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Dismiss):
		m.Store.Notifications().Dismiss()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Refresh):
		logging.Debug(subsystem, "Refreshing operator list")
		return m, m.Controller.LoadAll()

	case key.Matches(keyMsg, m.Keys.Add):
		m.Store.OpenCreate()
		return m, enterEditor(m)

	case key.Matches(keyMsg, m.Keys.Edit):
		op, ok := m.SelectedOperator()
		if !ok {
			return m, nil
		}
		if err := m.Store.OpenEdit(op.ID); err != nil {
			logging.Warn(subsystem, "Cannot edit operator %s: %v", op.ID, err)
			return m, m.Store.Notifications().Error(err.Error())
		}
		return m, enterEditor(m)

	case key.Matches(keyMsg, m.Keys.Delete):
		op, ok := m.SelectedOperator()
		if !ok {
			return m, nil
		}
		cmd, err := m.Controller.Delete(op.ID)
		if err != nil {
			res := console.Rejected(console.OpDelete, err)
			logging.Debug(subsystem, "Delete of %s %s: %v", op.ID, res.Kind, err)
			return m, nil
		}
		logging.Info(subsystem, "Deleting operator %s (%s)", op.ID, op.Name)
		return m, cmd

	case key.Matches(keyMsg, m.Keys.Copy):
		op, ok := m.SelectedOperator()
		if !ok {
			return m, nil
		}
		data, err := json.MarshalIndent(op, "", "  ")
		if err != nil {
			return m, m.Store.Notifications().Error("Copy failed")
		}
		if err := writeClipboard(string(data)); err != nil {
			logging.Error(subsystem, err, "Failed to copy operator %s", op.ID)
			return m, m.Store.Notifications().Error("Copy failed")
		}
		return m, m.Store.Notifications().Success(fmt.Sprintf("Operator %s copied to clipboard", op.ID))
	}

	// Anything else moves the table cursor.
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(keyMsg)
	return m, cmd
}

func enterEditor(m *model.Model) tea.Cmd {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModeEditor
	return m.ResetInputs()
}
