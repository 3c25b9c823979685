package controller

import (
	"errors"

	"smscctl/internal/console"
	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"
	"smscctl/internal/tui/view"
	"smscctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NewProgram creates the Bubble Tea program for the operator console.
func NewProgram(
	ctrl *console.Controller,
	gatewayURL string,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) (*tea.Program, error) {
	if ctrl == nil {
		return nil, errors.New("console controller is required")
	}

	design.Initialize(lipgloss.HasDarkBackground())

	m := model.InitialModel(ctrl, gatewayURL, debugMode, logChannel)
	m.Table.SetStyles(view.TableStyles())
	app := NewAppModel(m)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return p, nil
}
