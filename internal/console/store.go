package console

import (
	"errors"

	"smscctl/internal/notify"
	"smscctl/internal/operator"
)

// ErrOperatorNotFound is returned when an edit targets an id that is not in the list.
var ErrOperatorNotFound = errors.New("operator not found")

// Editor is a snapshot of the create/edit dialog session.
type Editor struct {
	Open     bool
	Mode     operator.Mode
	TargetID operator.ID
	Draft    operator.Draft

	// Submitting is true while a create/update issued from the console is in flight.
	Submitting bool

	// Error is the validation message for ErrorField, empty when the draft has not been rejected.
	Error      string
	ErrorField operator.Field

	// Session identifies one open..close cycle of the dialog.
	Session uint64
}

// Title is the dialog heading.
func (e Editor) Title() string {
	if e.Mode == operator.ModeEdit {
		return "Edit Operator"
	}
	return "Add Operator"
}

// Store is the console's state container: the canonical operator list, the
// single editor session, in-flight flags and the notification slot.
//
// It is owned by the UI loop; only Controller.Handle replaces the list.
type Store struct {
	operators []operator.Operator
	loaded    bool
	loads     int

	editor     Editor
	sessions   uint64
	submitting bool
	deleting   map[operator.ID]bool

	notes *notify.Channel
}

// NewStore returns an empty store publishing feedback on notes.
func NewStore(notes *notify.Channel) *Store {
	if notes == nil {
		notes = notify.New(notify.DefaultDuration)
	}
	return &Store{
		operators: []operator.Operator{},
		deleting:  make(map[operator.ID]bool),
		notes:     notes,
	}
}

// Operators returns a copy of the canonical list in server order.
func (s *Store) Operators() []operator.Operator {
	out := make([]operator.Operator, len(s.operators))
	copy(out, s.operators)
	return out
}

// Len is the number of operators in the canonical list.
func (s *Store) Len() int { return len(s.operators) }

// Find looks an operator up by id.
func (s *Store) Find(id operator.ID) (operator.Operator, bool) {
	for _, op := range s.operators {
		if op.ID == id {
			return op, true
		}
	}
	return operator.Operator{}, false
}

// Loaded reports whether at least one list fetch has succeeded.
func (s *Store) Loaded() bool { return s.loaded }

// Loading reports whether a list fetch is in flight.
func (s *Store) Loading() bool { return s.loads > 0 }

// Deleting reports whether a delete for id is in flight.
func (s *Store) Deleting(id operator.ID) bool { return s.deleting[id] }

// Busy reports whether any request is in flight.
func (s *Store) Busy() bool {
	return s.loads > 0 || s.submitting || len(s.deleting) > 0
}

// Editor returns a snapshot of the dialog session.
func (s *Store) Editor() Editor {
	e := s.editor
	e.Submitting = s.submitting && e.Open
	return e
}

// Notification returns the current toast.
func (s *Store) Notification() notify.Notification { return s.notes.Current() }

// Notifications exposes the channel, e.g. for explicit dismissal.
func (s *Store) Notifications() *notify.Channel { return s.notes }

// OpenCreate starts a create session with an empty draft.
func (s *Store) OpenCreate() {
	s.sessions++
	s.editor = Editor{
		Open:    true,
		Mode:    operator.ModeCreate,
		Session: s.sessions,
	}
}

// OpenEdit starts an edit session seeded from the operator's current values.
func (s *Store) OpenEdit(id operator.ID) error {
	op, ok := s.Find(id)
	if !ok {
		return ErrOperatorNotFound
	}
	s.sessions++
	s.editor = Editor{
		Open:     true,
		Mode:     operator.ModeEdit,
		TargetID: op.ID,
		Draft:    operator.DraftFrom(op),
		Session:  s.sessions,
	}
	return nil
}

// SetField updates one raw input of the open draft. Editing clears a pending
// validation message.
func (s *Store) SetField(f operator.Field, value string) {
	if !s.editor.Open {
		return
	}
	s.editor.Draft = s.editor.Draft.Set(f, value)
	s.editor.Error = ""
}

// CloseEditor discards the draft and the target id.
func (s *Store) CloseEditor() {
	s.editor = Editor{}
}

func (s *Store) replaceAll(ops []operator.Operator) {
	fresh := make([]operator.Operator, len(ops))
	copy(fresh, ops)
	s.operators = fresh
	s.loaded = true
}

func (s *Store) rejectDraft(verr *operator.ValidationError) {
	if !s.editor.Open {
		return
	}
	s.editor.Error = verr.Message
	s.editor.ErrorField = verr.Field
}
