package controller

import (
	"smscctl/internal/console"
	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"
	"smscctl/internal/tui/view"
	"smscctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "TUI"

// Update is the central message router. Console messages (settled requests
// and notification expiry) go to the console controller first; everything
// else is dispatched by type and current mode. The table and dialog are
// re-synchronised from the store after every message.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if res, cmd, ok := m.Controller.Handle(msg); ok {
		cmds = append(cmds, cmd)
		if res.Op != console.OpNone {
			logging.Debug(subsystem, "%s settled: %s", res.Op, res.Kind)
		}
		cmds = append(cmds, syncFromStore(m))
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		var cmd tea.Cmd
		if m.CurrentAppMode == model.ModeEditor {
			m, cmd = handleKeyMsgEditor(m, msg)
		} else {
			m, cmd = handleKeyMsgGlobal(m, msg)
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m = handleWindowSizeMsg(m, msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	if m.CurrentAppMode == model.ModeQuitting {
		return m, tea.Batch(cmds...)
	}

	refreshLogViewport(m)
	cmds = append(cmds, syncFromStore(m))
	return m, tea.Batch(cmds...)
}

// syncFromStore makes the widgets follow the store: the table mirrors the
// canonical list, the dialog follows the editor session.
func syncFromStore(m *model.Model) tea.Cmd {
	var cmd tea.Cmd
	ed := m.Store.Editor()

	switch {
	case !ed.Open && m.CurrentAppMode == model.ModeEditor:
		m.CurrentAppMode = model.ModeOperatorList
		m.Inputs = nil
		m.EditorSession = 0
	case ed.Open && ed.Session != m.EditorSession:
		cmd = m.ResetInputs()
		m.CurrentAppMode = model.ModeEditor
	}

	view.SyncTable(m)
	return cmd
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) *model.Model {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	w, h := view.LogOverlaySize(m.Width, m.Height)
	m.LogViewport.Width = w - design.LogOverlayStyle.GetHorizontalFrameSize()
	m.LogViewport.Height = h - design.LogOverlayStyle.GetVerticalFrameSize() - view.LogOverlayTitleHeight
	if m.LogViewport.Height < 1 {
		m.LogViewport.Height = 1
	}
	return m
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, entry.Format())
	}
	return m
}

func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty && m.LogViewportLastWidth == m.LogViewport.Width {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom || m.CurrentAppMode != model.ModeLogOverlay {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Closing operator console..."
	logging.Info(subsystem, "Quit requested")
	return m, tea.Quit
}
