package operator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `{"id": 7}`, "7"},
		{"large number", `{"id": 1718000000000000000}`, "1718000000000000000"},
		{"string", `{"id": "op-7"}`, "op-7"},
		{"null", `{"id": null}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var op Operator
			require.NoError(t, json.Unmarshal([]byte(tt.in), &op))
			assert.Equal(t, tt.want, op.ID)
		})
	}

	var op Operator
	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &op))
}

func TestIDMarshalKeepsNumbers(t *testing.T) {
	b, err := json.Marshal(Operator{ID: "7", Name: "Carrier A", Priority: 1, Weight: 50, MaxTPS: 100})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Carrier A","priority":1,"weight":50,"maxTps":100}`, string(b))

	tests := []struct {
		name string
		id   ID
		want string
	}{
		{"zero", "0", `0`},
		{"negative", "-12", `-12`},
		{"text", "op-7", `"op-7"`},
		{"leading zero", "007", `"007"`},
		{"plus sign", "+5", `"+5"`},
		{"lone minus", "-", `"-"`},
		{"fraction", "1.5", `"1.5"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestIDStringRoundTrip(t *testing.T) {
	for _, in := range []string{`{"id":"007","name":"a","priority":0,"weight":0,"maxTps":0}`, `{"id":"+5","name":"a","priority":0,"weight":0,"maxTps":0}`} {
		var op Operator
		require.NoError(t, json.Unmarshal([]byte(in), &op))
		b, err := json.Marshal(op)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(b))
	}
}

func TestPayloadApply(t *testing.T) {
	op := Operator{ID: "3", Name: "old", Status: "inactive"}
	got := Payload{Name: "new", Priority: 2, Weight: 10, MaxTPS: 20}.Apply(op)
	assert.Equal(t, Operator{ID: "3", Name: "new", Priority: 2, Weight: 10, MaxTPS: 20, Status: "inactive"}, got)
}
