package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"smscctl/internal/console"
	"smscctl/internal/operator"
	"smscctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// OperatorTools exposes the console controller as MCP tools.
type OperatorTools struct {
	// mu serializes tool calls; the controller is single-threaded.
	mu   sync.Mutex
	ctrl *console.Controller
}

// NewOperatorTools wraps ctrl. Its store should use a zero notification duration.
func NewOperatorTools(ctrl *console.Controller) *OperatorTools {
	return &OperatorTools{ctrl: ctrl}
}

// GetTools returns all operator tools
func (ot *OperatorTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("operator_list",
			mcp.WithDescription("List messaging operators in gateway order"),
		),
		mcp.NewTool("operator_create",
			mcp.WithDescription("Create a messaging operator"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Operator name"),
			),
			mcp.WithNumber("priority",
				mcp.Required(),
				mcp.Description("Dispatch priority"),
			),
			mcp.WithNumber("weight",
				mcp.Required(),
				mcp.Description("Relative share in weighted distribution"),
			),
			mcp.WithNumber("max_tps",
				mcp.Required(),
				mcp.Description("Throughput ceiling in transactions per second, zero or greater"),
			),
		),
		mcp.NewTool("operator_update",
			mcp.WithDescription("Update a messaging operator; omitted fields keep their current value"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Operator id"),
			),
			mcp.WithString("name", mcp.Description("New name")),
			mcp.WithNumber("priority", mcp.Description("New priority")),
			mcp.WithNumber("weight", mcp.Description("New weight")),
			mcp.WithNumber("max_tps", mcp.Description("New throughput ceiling")),
		),
		mcp.NewTool("operator_delete",
			mcp.WithDescription("Delete a messaging operator"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Operator id"),
			),
		),
	}
}

// HandleOperatorList handles the operator_list tool call
func (ot *OperatorTools) HandleOperatorList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ot.mu.Lock()
	defer ot.mu.Unlock()

	if res, ok := console.Last(console.Drive(ot.ctrl, ot.ctrl.LoadAll()), console.OpList); ok && !res.OK() {
		return mcp.NewToolResultError(res.Message), nil
	}

	ops := ot.ctrl.Store().Operators()
	result := map[string]interface{}{
		"operators": ops,
		"total":     len(ops),
	}
	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format operators: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// HandleOperatorCreate handles the operator_create tool call
func (ot *OperatorTools) HandleOperatorCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	draft := operator.Draft{Name: name}
	args := req.GetArguments()
	for _, arg := range numericArgs {
		v, ok := args[arg.key]
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("%s is required", arg.key)), nil
		}
		draft = draft.Set(arg.field, numberText(v))
	}

	ot.mu.Lock()
	defer ot.mu.Unlock()

	cmd, err := ot.ctrl.Create(draft)
	if err != nil {
		return mcp.NewToolResultError(console.Rejected(console.OpCreate, err).Message), nil
	}
	return writeResult(console.Drive(ot.ctrl, cmd), console.OpCreate)
}

// HandleOperatorUpdate handles the operator_update tool call
func (ot *OperatorTools) HandleOperatorUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawID, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}
	id := operator.ID(rawID)

	ot.mu.Lock()
	defer ot.mu.Unlock()

	// Seed from the server's current view, like the edit dialog.
	if res, ok := console.Last(console.Drive(ot.ctrl, ot.ctrl.LoadAll()), console.OpList); ok && !res.OK() {
		return mcp.NewToolResultError(res.Message), nil
	}
	current, found := ot.ctrl.Store().Find(id)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("Operator %s not found", id)), nil
	}

	draft := operator.DraftFrom(current)
	args := req.GetArguments()
	if _, ok := args["name"]; ok {
		draft = draft.Set(operator.FieldName, req.GetString("name", current.Name))
	}
	for _, arg := range numericArgs {
		if _, ok := args[arg.key]; !ok {
			continue
		}
		draft = draft.Set(arg.field, numberText(args[arg.key]))
	}

	cmd, err := ot.ctrl.Update(id, draft)
	if err != nil {
		return mcp.NewToolResultError(console.Rejected(console.OpUpdate, err).Message), nil
	}
	return writeResult(console.Drive(ot.ctrl, cmd), console.OpUpdate)
}

// HandleOperatorDelete handles the operator_delete tool call
func (ot *OperatorTools) HandleOperatorDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawID, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	ot.mu.Lock()
	defer ot.mu.Unlock()

	cmd, err := ot.ctrl.Delete(operator.ID(rawID))
	if err != nil {
		return mcp.NewToolResultError(console.Rejected(console.OpDelete, err).Message), nil
	}
	return writeResult(console.Drive(ot.ctrl, cmd), console.OpDelete)
}

var numericArgs = []struct {
	key   string
	field operator.Field
}{
	{"priority", operator.FieldPriority},
	{"weight", operator.FieldWeight},
	{"max_tps", operator.FieldMaxTPS},
}

// numberText renders a tool argument as the text a user would have typed, so
// the draft validator decides what counts as an integer. Fractional numbers
// keep their fraction and are rejected there.
func numberText(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case json.Number:
		return n.String()
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case nil:
		return ""
	default:
		return fmt.Sprint(n)
	}
}

func writeResult(results []console.Result, op console.Op) (*mcp.CallToolResult, error) {
	res, ok := console.Last(results, op)
	if !ok {
		return mcp.NewToolResultError("No result"), nil
	}
	if !res.OK() {
		logging.Warn(subsystem, "%s failed: %s", op, res.Message)
		return mcp.NewToolResultError(res.Message), nil
	}
	if op == console.OpDelete {
		return mcp.NewToolResultText(res.Message), nil
	}

	saved, err := json.MarshalIndent(res.Operator, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(res.Message), nil
	}
	return mcp.NewToolResultText(res.Message + "\n" + string(saved)), nil
}
