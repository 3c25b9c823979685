package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"smscctl/internal/config"
	"smscctl/internal/mockgateway"
	"smscctl/internal/operator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useGateway points the persistent flags at a seeded in-memory gateway and
// keeps the user's config files out of the way.
func useGateway(t *testing.T) *mockgateway.Registry {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvToken, "")
	t.Chdir(dir)

	reg := mockgateway.NewRegistry()
	reg.Seed()
	srv := httptest.NewServer(mockgateway.NewServer(reg, mockgateway.Options{}))
	t.Cleanup(srv.Close)

	prevURL, prevToken, prevConfig, prevLevel := flagAPIURL, flagToken, flagConfigPath, flagLogLevel
	flagAPIURL = srv.URL + mockgateway.BasePath
	flagToken, flagConfigPath, flagLogLevel = "", "", "error"
	t.Cleanup(func() {
		flagAPIURL, flagToken, flagConfigPath, flagLogLevel = prevURL, prevToken, prevConfig, prevLevel
	})
	return reg
}

func runOperators(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := newOperatorsCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestOperatorsListJSON(t *testing.T) {
	useGateway(t)

	out, err := runOperators(t, "list", "-o", "json")
	require.NoError(t, err)

	var ops []operator.Operator
	require.NoError(t, json.Unmarshal([]byte(out), &ops))
	require.Len(t, ops, 2)
	assert.Equal(t, "Operator 1", ops[0].Name)
	assert.Equal(t, "Operator 2", ops[1].Name)
	assert.Equal(t, 500, ops[1].MaxTPS)
}

func TestOperatorsListTable(t *testing.T) {
	useGateway(t)

	out, err := runOperators(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Operator 1")
	assert.Contains(t, out, "MAX TPS")
}

func TestOperatorsAdd(t *testing.T) {
	reg := useGateway(t)

	out, err := runOperators(t, "add", "--name", "Carrier A", "--priority", "3", "--weight", "25", "--max-tps", "100", "-o", "json")
	require.NoError(t, err)

	var created operator.Operator
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "Carrier A", created.Name)
	assert.Equal(t, 100, created.MaxTPS)

	ops := reg.List()
	require.Len(t, ops, 3)
	assert.Equal(t, "Carrier A", ops[2].Name)
}

func TestOperatorsAddValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing name", []string{"add", "--priority", "1", "--weight", "1", "--max-tps", "1"}, "Name required"},
		{"non-integer weight", []string{"add", "--name", "x", "--priority", "1", "--weight", "lots", "--max-tps", "1"}, "Weight must be an integer"},
		{"negative max tps", []string{"add", "--name", "x", "--priority", "1", "--weight", "1", "--max-tps=-5"}, "Max TPS must be zero or greater"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := useGateway(t)
			_, err := runOperators(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Len(t, reg.List(), 2, "nothing is sent to the gateway")
		})
	}
}

func TestOperatorsAddDuplicateName(t *testing.T) {
	useGateway(t)

	_, err := runOperators(t, "add", "--name", "operator 1", "--priority", "1", "--weight", "1", "--max-tps", "1")
	require.Error(t, err)
	assert.Equal(t, "operator name already exists", err.Error())
}

func TestOperatorsUpdateKeepsOmittedFields(t *testing.T) {
	reg := useGateway(t)

	out, err := runOperators(t, "update", "2", "--max-tps", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "Operator updated")

	ops := reg.List()
	require.Len(t, ops, 2)
	op := ops[1]
	assert.Equal(t, "Operator 2", op.Name)
	assert.Equal(t, 2, op.Priority)
	assert.Equal(t, 50, op.Weight)
	assert.Equal(t, 250, op.MaxTPS)
}

func TestOperatorsUpdateUnknownID(t *testing.T) {
	useGateway(t)

	_, err := runOperators(t, "update", "99", "--name", "x")
	require.Error(t, err)
	assert.Equal(t, "operator 99 not found", err.Error())
}

func TestOperatorsDelete(t *testing.T) {
	reg := useGateway(t)

	out, err := runOperators(t, "rm", "1", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "message: Operator deleted")

	ops := reg.List()
	require.Len(t, ops, 1)
	assert.Equal(t, "Operator 2", ops[0].Name)

	_, err = runOperators(t, "delete", "1")
	require.Error(t, err)
}

func TestOperatorsBadOutputFormat(t *testing.T) {
	useGateway(t)

	_, err := runOperators(t, "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestOperatorsUnreachableGateway(t *testing.T) {
	useGateway(t)
	flagAPIURL = "http://127.0.0.1:1/api/v1"

	_, err := runOperators(t, "list")
	require.Error(t, err)
	assert.Equal(t, "Failed to load operators", err.Error())
}

func TestOperatorsQuiet(t *testing.T) {
	reg := useGateway(t)

	out, err := runOperators(t, "add", "-q", "--name", "Carrier A", "--priority", "1", "--weight", "1", "--max-tps", "1")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Len(t, reg.List(), 3)

	_, err = runOperators(t, "delete", "--quiet", "99")
	require.Error(t, err)
	assert.Equal(t, "Failed to delete operator", err.Error())
}
