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
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy as JSON"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss notification"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter/ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// InitialModel constructs the initial model around a console controller.
func InitialModel(ctrl *console.Controller, gatewayURL string, debugMode bool, logChannel <-chan logging.LogEntry) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return &Model{
		CurrentAppMode:   ModeOperatorList,
		DebugMode:        debugMode,
		GatewayURL:       gatewayURL,
		Controller:       ctrl,
		Store:            ctrl.Store(),
		Table:            t,
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       logChannel,
	}
}

// Init implements tea.Model: it fetches the operator list and starts listening for logs.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Controller.LoadAll(),
		m.Spinner.Tick,
		ListenForLogEntriesCmd(m.LogChannel),
	)
}

// ResetInputs rebuilds the dialog inputs from the store's editor session and
// focuses the first one.
func (m *Model) ResetInputs() tea.Cmd {
	ed := m.Store.Editor()
	fields := operator.Fields()
	m.Inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 30
		ti.Placeholder = f.Label()
		ti.SetValue(ed.Draft.Get(f))
		m.Inputs[i] = ti
	}
	m.EditorSession = ed.Session
	return m.FocusInput(0)
}

// FocusInput moves dialog focus to index i, wrapping around; len(Inputs) is the Save button.
func (m *Model) FocusInput(i int) tea.Cmd {
	n := len(m.Inputs) + 1
	m.FocusIndex = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.Inputs {
		if j == m.FocusIndex {
			cmd = m.Inputs[j].Focus()
		} else {
			m.Inputs[j].Blur()
		}
	}
	return cmd
}
