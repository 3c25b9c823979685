package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smscctl/internal/gateway"
	"smscctl/internal/notify"
	"smscctl/internal/operator"
	"smscctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "Console"

// Notification texts.
const (
	MsgAdded        = "Operator added successfully"
	MsgUpdated      = "Operator updated successfully"
	MsgDeleted      = "Operator deleted successfully"
	MsgLoadFailed   = "Failed to load operators"
	MsgSaveFailed   = "Failed to save operator"
	MsgDeleteFailed = "Failed to delete operator"
	MsgMalformed    = "Invalid response format from server"
)

var (
	// ErrWriteInFlight suppresses a duplicate write while the previous one is unsettled.
	ErrWriteInFlight = errors.New("a write for this operator is already in flight")
	// ErrEditorClosed is returned by Submit when no dialog session is open.
	ErrEditorClosed = errors.New("operator editor is not open")
	// ErrMissingID is returned by Update for an operator that was never created.
	ErrMissingID = errors.New("operator id is required")
)

// OperatorClient is the remote side of the synchronization loop.
type OperatorClient interface {
	List(ctx context.Context) ([]operator.Operator, error)
	Create(ctx context.Context, p operator.Payload) (operator.Operator, error)
	Update(ctx context.Context, id operator.ID, p operator.Payload) (operator.Operator, error)
	Delete(ctx context.Context, id operator.ID) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithRequestTimeout bounds every round-trip. Zero means no deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// Controller orchestrates writes against the gateway and the refresh that
// follows each of them. Methods that start a request return a tea.Cmd; the
// settled message must be fed back through Handle on the same loop.
type Controller struct {
	store   *Store
	client  OperatorClient
	timeout time.Duration
}

// NewController wires a store to a client.
func NewController(store *Store, client OperatorClient, opts ...Option) *Controller {
	c := &Controller{store: store, client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the state container the controller mutates.
func (c *Controller) Store() *Store { return c.store }

// LoadAll requests the full list. The canonical list is replaced when the
// resulting OperatorsLoadedMsg is handled.
func (c *Controller) LoadAll() tea.Cmd {
	c.store.loads++
	client, timeout := c.client, c.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		ops, err := client.List(ctx)
		return OperatorsLoadedMsg{Operators: ops, Err: err}
	}
}

// Submit dispatches the open dialog's draft as a create or an update.
func (c *Controller) Submit() (tea.Cmd, error) {
	ed := c.store.editor
	if !ed.Open {
		return nil, ErrEditorClosed
	}
	if ed.Mode == operator.ModeEdit {
		return c.Update(ed.TargetID, ed.Draft)
	}
	return c.Create(ed.Draft)
}

// Create validates the draft and, if it is complete, posts it.
func (c *Controller) Create(d operator.Draft) (tea.Cmd, error) {
	return c.write(OpCreate, "", d)
}

// Update validates the draft and, if it is complete, puts it to operator id.
func (c *Controller) Update(id operator.ID, d operator.Draft) (tea.Cmd, error) {
	if id.IsZero() {
		return nil, ErrMissingID
	}
	return c.write(OpUpdate, id, d)
}

// Delete removes operator id. A second delete for the same id is refused while
// the first is unsettled.
func (c *Controller) Delete(id operator.ID) (tea.Cmd, error) {
	if id.IsZero() {
		return nil, ErrMissingID
	}
	if c.store.deleting[id] {
		return nil, ErrWriteInFlight
	}
	c.store.deleting[id] = true

	client, timeout := c.client, c.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		err := client.Delete(ctx, id)
		return WriteCompletedMsg{Op: OpDelete, ID: id, Err: err}
	}, nil
}

func (c *Controller) write(op Op, id operator.ID, d operator.Draft) (tea.Cmd, error) {
	if c.store.submitting {
		return nil, ErrWriteInFlight
	}
	payload, err := operator.Coerce(d)
	if err != nil {
		var verr *operator.ValidationError
		if errors.As(err, &verr) {
			c.store.rejectDraft(verr)
		}
		logging.Debug(subsystem, "%s rejected before dispatch: %v", op, err)
		return nil, err
	}

	c.store.submitting = true
	c.store.editor.Error = ""
	session := c.store.editor.Session
	client, timeout := c.client, c.timeout

	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		var (
			saved operator.Operator
			err   error
		)
		if op == OpUpdate {
			saved, err = client.Update(ctx, id, payload)
		} else {
			saved, err = client.Create(ctx, payload)
		}
		return WriteCompletedMsg{Op: op, ID: id, Session: session, Operator: saved, Err: err}
	}, nil
}

// Handle applies a settled request to the store. It reports whether msg
// belonged to the controller and, for settled operations, the Result. The
// returned command carries any follow-up: the post-write refresh and the
// notification's expiry timer.
func (c *Controller) Handle(msg tea.Msg) (Result, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case OperatorsLoadedMsg:
		res, cmd := c.handleLoaded(msg)
		return res, cmd, true
	case WriteCompletedMsg:
		res, cmd := c.handleWrite(msg)
		return res, cmd, true
	case notify.ExpiredMsg:
		c.store.notes.Expire(msg)
		return Result{}, nil, true
	}
	return Result{}, nil, false
}

func (c *Controller) handleLoaded(msg OperatorsLoadedMsg) (Result, tea.Cmd) {
	if c.store.loads > 0 {
		c.store.loads--
	}
	if msg.Err != nil {
		logging.Error(subsystem, msg.Err, "Failed to load operators")
		cmd := c.store.notes.Error(MsgLoadFailed)
		return Result{Op: OpList, Kind: classify(msg.Err), Message: MsgLoadFailed, Err: msg.Err}, cmd
	}
	c.store.replaceAll(msg.Operators)
	logging.Debug(subsystem, "Loaded %d operators", len(msg.Operators))
	return Result{Op: OpList, Kind: ResultSucceeded}, nil
}

func (c *Controller) handleWrite(msg WriteCompletedMsg) (Result, tea.Cmd) {
	if msg.Op == OpDelete {
		delete(c.store.deleting, msg.ID)
	} else {
		c.store.submitting = false
	}

	res := Result{Op: msg.Op, ID: msg.ID, Operator: msg.Operator, Err: msg.Err, Kind: classify(msg.Err)}

	if msg.Err != nil {
		res.Message = failureMessage(msg.Op, msg.Err)
		logging.Error(subsystem, msg.Err, "Operator %s failed", msg.Op)
		return res, c.store.notes.Error(res.Message)
	}

	switch msg.Op {
	case OpCreate:
		res.Message = MsgAdded
	case OpUpdate:
		res.Message = MsgUpdated
	case OpDelete:
		res.Message = MsgDeleted
	}
	if msg.Op != OpDelete && c.store.editor.Open && c.store.editor.Session == msg.Session {
		c.store.CloseEditor()
	}
	logging.Info(subsystem, "Operator %s succeeded (id %s)", msg.Op, firstNonEmpty(msg.Operator.ID, msg.ID))

	// The refresh is created here, after the write response was observed.
	return res, tea.Batch(c.store.notes.Success(res.Message), c.LoadAll())
}

func failureMessage(op Op, err error) string {
	if op == OpDelete {
		return MsgDeleteFailed
	}
	var (
		serr *gateway.ServerError
		merr *gateway.MalformedResponseError
		nerr *gateway.NetworkError
	)
	switch {
	case errors.As(err, &serr):
		return serr.Message
	case errors.As(err, &merr):
		return MsgMalformed
	case errors.As(err, &nerr) && nerr.StatusCode != 0:
		return fmt.Sprintf("%s: %s", MsgSaveFailed, nerr.Status())
	default:
		return MsgSaveFailed
	}
}

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

func firstNonEmpty(ids ...operator.ID) operator.ID {
	for _, id := range ids {
		if !id.IsZero() {
			return id
		}
	}
	return ""
}
