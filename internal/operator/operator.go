// Package operator holds the messaging operator resource as the gateway reports it,
// plus the editor draft and the validation/coercion rules applied before any write.
package operator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is the server-assigned operator identifier. The gateway may send it as a
// JSON number or a JSON string; the console only ever treats it as text.
type ID string

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// IsZero reports whether the id is unset, i.e. the operator was never created.
func (id ID) IsZero() bool { return id == "" }

// UnmarshalJSON accepts numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("operator id must be a number or string: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical integer ids back as numbers and everything
// else as a string, so the output is always valid JSON.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if isJSONInteger(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// isJSONInteger matches -?(0|[1-9][0-9]*).
func isJSONInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" || (s[0] == '0' && len(s) > 1) {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Operator is a configured downstream messaging carrier/route.
type Operator struct {
	ID       ID     `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Priority int    `json:"priority" yaml:"priority"`
	Weight   int    `json:"weight" yaml:"weight"`
	MaxTPS   int    `json:"maxTps" yaml:"maxTps"`
	Status   string `json:"status,omitempty" yaml:"status,omitempty"`
}

// Payload is the create/update request body.
type Payload struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Weight   int    `json:"weight"`
	MaxTPS   int    `json:"maxTps"`
}

// Apply returns a copy of op carrying the payload's writable fields.
func (p Payload) Apply(op Operator) Operator {
	op.Name = p.Name
	op.Priority = p.Priority
	op.Weight = p.Weight
	op.MaxTPS = p.MaxTPS
	return op
}
