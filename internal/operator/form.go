package operator

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one editable input of the operator form.
type Field int

const (
	FieldName Field = iota
	FieldPriority
	FieldWeight
	FieldMaxTPS
)

// Fields lists the form inputs in display order.
func Fields() []Field {
	return []Field{FieldName, FieldPriority, FieldWeight, FieldMaxTPS}
}

// Label is the human readable input label.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldPriority:
		return "Priority"
	case FieldWeight:
		return "Weight"
	case FieldMaxTPS:
		return "Max TPS"
	default:
		return "Unknown"
	}
}

// Mode tells whether an editor session creates a new operator or edits one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Draft is the raw text of an operator being created or edited. Numeric fields
// stay text until submission so half-typed values are allowed while editing.
type Draft struct {
	Name     string
	Priority string
	Weight   string
	MaxTPS   string
}

// DraftFrom seeds an edit draft from an operator's current values.
func DraftFrom(op Operator) Draft {
	return Draft{
		Name:     op.Name,
		Priority: strconv.Itoa(op.Priority),
		Weight:   strconv.Itoa(op.Weight),
		MaxTPS:   strconv.Itoa(op.MaxTPS),
	}
}

// Get returns the raw text of a field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldPriority:
		return d.Priority
	case FieldWeight:
		return d.Weight
	case FieldMaxTPS:
		return d.MaxTPS
	default:
		return ""
	}
}

// Set returns a copy of the draft with one field replaced.
func (d Draft) Set(f Field, value string) Draft {
	switch f {
	case FieldName:
		d.Name = value
	case FieldPriority:
		d.Priority = value
	case FieldWeight:
		d.Weight = value
	case FieldMaxTPS:
		d.MaxTPS = value
	}
	return d
}

// ValidationError rejects a draft before any request is made.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the draft field by field in form order and reports the first problem.
func Validate(d Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: FieldName, Message: "Name required"}
	}
	for _, f := range []Field{FieldPriority, FieldWeight, FieldMaxTPS} {
		n, err := parseInt(f, d.Get(f))
		if err != nil {
			return err
		}
		if f == FieldMaxTPS && n < 0 {
			return &ValidationError{Field: f, Message: "Max TPS must be zero or greater"}
		}
	}
	return nil
}

// Coerce validates the draft and converts it into a request payload.
func Coerce(d Draft) (Payload, error) {
	if err := Validate(d); err != nil {
		return Payload{}, err
	}
	// Validate already guarantees these parse.
	priority, _ := parseInt(FieldPriority, d.Priority)
	weight, _ := parseInt(FieldWeight, d.Weight)
	maxTPS, _ := parseInt(FieldMaxTPS, d.MaxTPS)
	return Payload{
		Name:     d.Name,
		Priority: priority,
		Weight:   weight,
		MaxTPS:   maxTPS,
	}, nil
}

func parseInt(f Field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: f, Message: fmt.Sprintf("%s required", f.Label())}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Field: f, Message: fmt.Sprintf("%s must be an integer", f.Label())}
	}
	return n, nil
}
