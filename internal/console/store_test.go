package console

import (
	"testing"

	"smscctl/internal/notify"
	"smscctl/internal/operator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carrierA = operator.Operator{ID: "7", Name: "Carrier A", Priority: 1, Weight: 50, MaxTPS: 100, Status: "active"}

func TestNewStoreIsEmpty(t *testing.T) {
	s := NewStore(nil)
	assert.NotNil(t, s.Operators())
	assert.Empty(t, s.Operators())
	assert.False(t, s.Loaded())
	assert.False(t, s.Loading())
	assert.False(t, s.Busy())
	assert.False(t, s.Editor().Open)
	assert.Equal(t, notify.DefaultDuration, s.Notifications().Duration())
}

func TestOpenEditSeedsDraftVerbatim(t *testing.T) {
	s := NewStore(notify.New(0))
	s.replaceAll([]operator.Operator{carrierA})

	require.NoError(t, s.OpenEdit("7"))
	ed := s.Editor()
	assert.True(t, ed.Open)
	assert.Equal(t, operator.ModeEdit, ed.Mode)
	assert.Equal(t, operator.ID("7"), ed.TargetID)
	assert.Equal(t, "Edit Operator", ed.Title())
	assert.Equal(t, operator.Draft{Name: "Carrier A", Priority: "1", Weight: "50", MaxTPS: "100"}, ed.Draft)
}

func TestCancelledEditLeavesListUnchanged(t *testing.T) {
	s := NewStore(notify.New(0))
	s.replaceAll([]operator.Operator{carrierA})

	require.NoError(t, s.OpenEdit("7"))
	s.SetField(operator.FieldName, "Carrier B")
	s.SetField(operator.FieldMaxTPS, "9999")
	s.CloseEditor()

	got, ok := s.Find("7")
	require.True(t, ok)
	assert.Equal(t, carrierA, got)

	ed := s.Editor()
	assert.False(t, ed.Open)
	assert.Equal(t, operator.Draft{}, ed.Draft)
	assert.True(t, ed.TargetID.IsZero())
}

func TestOpenEditUnknownID(t *testing.T) {
	s := NewStore(notify.New(0))
	assert.ErrorIs(t, s.OpenEdit("42"), ErrOperatorNotFound)
	assert.False(t, s.Editor().Open)
}

func TestOpenCreateStartsEmptySession(t *testing.T) {
	s := NewStore(notify.New(0))
	s.OpenCreate()
	first := s.Editor()
	assert.Equal(t, operator.ModeCreate, first.Mode)
	assert.Equal(t, "Add Operator", first.Title())
	assert.Equal(t, operator.Draft{}, first.Draft)

	s.CloseEditor()
	s.OpenCreate()
	assert.Greater(t, s.Editor().Session, first.Session)
}

func TestSetFieldIgnoredWhenClosed(t *testing.T) {
	s := NewStore(notify.New(0))
	s.SetField(operator.FieldName, "x")
	assert.Equal(t, operator.Draft{}, s.Editor().Draft)
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	s := NewStore(notify.New(0))
	s.replaceAll([]operator.Operator{carrierA})

	ops := s.Operators()
	ops[0].Name = "mutated"
	got, _ := s.Find("7")
	assert.Equal(t, "Carrier A", got.Name)

	in := []operator.Operator{carrierA}
	s.replaceAll(in)
	in[0].Name = "mutated"
	got, _ = s.Find("7")
	assert.Equal(t, "Carrier A", got.Name)
}
