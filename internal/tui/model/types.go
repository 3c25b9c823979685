package model

import (
	"smscctl/internal/console"
	"smscctl/internal/operator"
	"smscctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeOperatorList AppMode = iota
	ModeEditor
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeOperatorList:
		return "OperatorList"
	case ModeEditor:
		return "Editor"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Constants for UI
const (
	MaxActivityLogLines = 1000
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	Copy      key.Binding
	Dismiss   key.Binding
	ToggleLog key.Binding
	Help      key.Binding
	Quit      key.Binding

	// Editor dialog
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap; each inner slice is a column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Refresh},
		{k.Copy, k.Dismiss, k.ToggleLog, k.Help, k.Quit},
		{k.NextField, k.PrevField, k.Submit, k.Cancel},
	}
}

// EditorHelp is the short help shown while the dialog is open.
func (k KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Cancel}
}

// Model represents the state of the operator console
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string
	GatewayURL      string

	// Console state; the store is the single source of truth for operators,
	// the dialog session and the notification slot.
	Controller *console.Controller
	Store      *console.Store

	// Operator table
	Table table.Model

	// Editor dialog; one input per operator.Fields(), focus index len(Inputs) is the Save button.
	Inputs        []textinput.Model
	FocusIndex    int
	EditorSession uint64

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model

	// Logging
	LogChannel <-chan logging.LogEntry
}

// SelectedOperator returns the operator under the table cursor.
func (m *Model) SelectedOperator() (operator.Operator, bool) {
	ops := m.Store.Operators()
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(ops) {
		return operator.Operator{}, false
	}
	return ops[idx], true
}

// SaveFocused reports whether focus is on the dialog's Save button.
func (m *Model) SaveFocused() bool {
	return m.FocusIndex == len(m.Inputs)
}
