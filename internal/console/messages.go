package console

import (
	"errors"

	"smscctl/internal/gateway"
	"smscctl/internal/operator"
)

// Op names the round-trip a message or result belongs to.
type Op int

const (
	OpNone Op = iota
	OpList
	OpCreate
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpList:
		return "list"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "none"
	}
}

// OperatorsLoadedMsg carries a settled list fetch back to the UI loop.
type OperatorsLoadedMsg struct {
	Operators []operator.Operator
	Err       error
}

// WriteCompletedMsg carries a settled create/update/delete back to the UI loop.
type WriteCompletedMsg struct {
	Op       Op
	ID       operator.ID
	Session  uint64
	Operator operator.Operator
	Err      error
}

// ResultKind is the closed set of outcomes an operation can end in.
type ResultKind int

const (
	ResultSucceeded ResultKind = iota
	ResultValidationFailed
	ResultSuppressed
	ResultNetworkFailed
	ResultServerRejected
	ResultMalformedResponse
)

func (k ResultKind) String() string {
	switch k {
	case ResultSucceeded:
		return "succeeded"
	case ResultValidationFailed:
		return "validation failed"
	case ResultSuppressed:
		return "suppressed"
	case ResultNetworkFailed:
		return "network failed"
	case ResultServerRejected:
		return "server rejected"
	case ResultMalformedResponse:
		return "malformed response"
	default:
		return "unknown"
	}
}

// Result is what the controller reports for every settled operation.
type Result struct {
	Op       Op
	Kind     ResultKind
	Message  string
	ID       operator.ID
	Operator operator.Operator
	Err      error
}

// OK reports success.
func (r Result) OK() bool { return r.Kind == ResultSucceeded }

// Rejected converts an error returned before dispatch (validation or in-flight
// suppression) into a Result.
func Rejected(op Op, err error) Result {
	return Result{Op: op, Kind: classify(err), Message: err.Error(), Err: err}
}

func classify(err error) ResultKind {
	var (
		verr *operator.ValidationError
		serr *gateway.ServerError
		merr *gateway.MalformedResponseError
	)
	switch {
	case err == nil:
		return ResultSucceeded
	case errors.As(err, &verr):
		return ResultValidationFailed
	case errors.Is(err, ErrWriteInFlight), errors.Is(err, ErrEditorClosed):
		return ResultSuppressed
	case errors.As(err, &serr):
		return ResultServerRejected
	case errors.As(err, &merr):
		return ResultMalformedResponse
	default:
		return ResultNetworkFailed
	}
}
