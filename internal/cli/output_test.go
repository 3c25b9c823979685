package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"smscctl/internal/console"
	"smscctl/internal/operator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var ops = []operator.Operator{
	{ID: "1", Name: "Operator 1", Priority: 1, Weight: 100, MaxTPS: 1000, Status: "active"},
	{ID: "2", Name: "Operator 2", Priority: 2, Weight: 50, MaxTPS: 500, Status: "active"},
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"table", OutputFormatTable, false},
		{"JSON", OutputFormatJSON, false},
		{" yaml ", OutputFormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintOperatorsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatJSON, &buf).PrintOperators(ops))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, float64(1), decoded[0]["id"])
	assert.Equal(t, "Operator 1", decoded[0]["name"])
	assert.Equal(t, float64(1000), decoded[0]["maxTps"])
}

func TestPrintOperatorsEmptyJSONIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatJSON, &buf).PrintOperators(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintOperatorsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatYAML, &buf).PrintOperators(ops))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Operator 2", decoded[1]["name"])
	assert.Equal(t, 500, decoded[1]["maxTps"])
}

func TestPrintOperatorsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).PrintOperators(ops))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "MAX TPS")
	assert.Contains(t, out, "Operator 1")
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "╭")

	buf.Reset()
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).PrintOperators(nil))
	assert.Contains(t, buf.String(), "No operators found")
}

func TestPrintResult(t *testing.T) {
	saved := console.Result{Op: console.OpCreate, Kind: console.ResultSucceeded, Message: console.MsgAdded, Operator: ops[0]}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).PrintResult(saved))
	assert.Contains(t, buf.String(), console.MsgAdded)
	assert.Contains(t, buf.String(), "Operator 1")

	buf.Reset()
	require.NoError(t, NewPrinter(OutputFormatJSON, &buf).PrintResult(saved))
	assert.Contains(t, buf.String(), `"name": "Operator 1"`)

	buf.Reset()
	deleted := console.Result{Op: console.OpDelete, Kind: console.ResultSucceeded, Message: console.MsgDeleted, ID: "1"}
	require.NoError(t, NewPrinter(OutputFormatYAML, &buf).PrintResult(deleted))
	assert.Equal(t, "message: "+console.MsgDeleted+"\n", buf.String())

	buf.Reset()
	quiet := &Printer{Format: OutputFormatTable, Out: &buf, Quiet: true}
	require.NoError(t, quiet.PrintResult(deleted))
	assert.Empty(t, buf.String())
}

func TestPrintResultFailure(t *testing.T) {
	var buf bytes.Buffer
	failed := console.Result{Op: console.OpCreate, Kind: console.ResultServerRejected, Message: "operator name already exists", Err: errors.New("409")}

	err := NewPrinter(OutputFormatTable, &buf).PrintResult(failed)
	require.Error(t, err)
	assert.Equal(t, "operator name already exists", err.Error())
	assert.Empty(t, buf.String())
}
