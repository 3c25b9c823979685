package model

import (
	"context"
	"testing"
	"time"

	"smscctl/internal/console"
	"smscctl/internal/notify"
	"smscctl/internal/operator"
	"smscctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopClient struct{}

func (nopClient) List(context.Context) ([]operator.Operator, error) { return nil, nil }
func (nopClient) Create(context.Context, operator.Payload) (operator.Operator, error) {
	return operator.Operator{}, nil
}
func (nopClient) Update(context.Context, operator.ID, operator.Payload) (operator.Operator, error) {
	return operator.Operator{}, nil
}
func (nopClient) Delete(context.Context, operator.ID) error { return nil }

func newModel() *Model {
	ctrl := console.NewController(console.NewStore(notify.New(0)), nopClient{})
	return InitialModel(ctrl, "http://localhost:8080/api/v1", false, nil)
}

func TestInitialModel(t *testing.T) {
	m := newModel()

	assert.Equal(t, ModeOperatorList, m.CurrentAppMode)
	assert.Same(t, m.Controller.Store(), m.Store)
	assert.Equal(t, "http://localhost:8080/api/v1", m.GatewayURL)
	assert.Empty(t, m.Inputs)
	assert.NotNil(t, m.Init())
	assert.True(t, m.Store.Loading(), "Init requests the operator list")
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "OperatorList", ModeOperatorList.String())
	assert.Equal(t, "Editor", ModeEditor.String())
	assert.Equal(t, "Quitting", ModeQuitting.String())
	assert.Equal(t, "Unknown", AppMode(99).String())
}

func TestDefaultKeyMap(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"add", k.Add, []string{"a"}},
		{"edit", k.Edit, []string{"e", "enter"}},
		{"delete", k.Delete, []string{"d"}},
		{"refresh", k.Refresh, []string{"r"}},
		{"copy", k.Copy, []string{"y"}},
		{"help", k.Help, []string{"h", "?"}},
		{"quit", k.Quit, []string{"q", "ctrl+c"}},
		{"submit", k.Submit, []string{"enter", "ctrl+s"}},
		{"cancel", k.Cancel, []string{"esc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
		})
	}
	assert.Len(t, k.FullHelp(), 3)
}

func TestResetInputsSeedsFromDraft(t *testing.T) {
	m := newModel()
	m.Store.OpenCreate()
	m.Store.SetField(operator.FieldName, "Carrier A")
	m.Store.SetField(operator.FieldMaxTPS, "100")

	m.ResetInputs()
	require.Len(t, m.Inputs, len(operator.Fields()))
	assert.Equal(t, "Carrier A", m.Inputs[0].Value())
	assert.Equal(t, "", m.Inputs[1].Value())
	assert.Equal(t, "100", m.Inputs[3].Value())
	assert.Equal(t, m.Store.Editor().Session, m.EditorSession)
	assert.Equal(t, 0, m.FocusIndex)
	assert.True(t, m.Inputs[0].Focused())
}

func TestFocusInputWraps(t *testing.T) {
	m := newModel()
	m.Store.OpenCreate()
	m.ResetInputs()

	m.FocusInput(len(m.Inputs))
	assert.True(t, m.SaveFocused())
	for _, in := range m.Inputs {
		assert.False(t, in.Focused())
	}

	m.FocusInput(len(m.Inputs) + 1)
	assert.Equal(t, 0, m.FocusIndex)

	m.FocusInput(-1)
	assert.True(t, m.SaveFocused())
}

func TestSelectedOperatorEmpty(t *testing.T) {
	m := newModel()
	_, ok := m.SelectedOperator()
	assert.False(t, ok)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	entry := logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelInfo, Subsystem: "Test", Message: "hello"}
	ch <- entry
	msg := ListenForLogEntriesCmd(ch)()
	assert.Equal(t, NewLogEntryMsg{Entry: entry}, msg)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestAddRawLineToActivityLogCaps(t *testing.T) {
	m := newModel()
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}
