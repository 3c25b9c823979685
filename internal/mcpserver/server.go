// Package mcpserver serves the operator console's operations as MCP tools
// over stdio, so assistants can list and edit operators through the same
// controller the TUI uses.
package mcpserver

import (
	"smscctl/internal/console"
	"smscctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCP"

// NewServer creates the MCP server and registers every operator tool.
func NewServer(ctrl *console.Controller, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"smscctl",
		version,
		server.WithToolCapabilities(true),
	)

	ot := NewOperatorTools(ctrl)
	handlers := map[string]server.ToolHandlerFunc{
		"operator_list":   ot.HandleOperatorList,
		"operator_create": ot.HandleOperatorCreate,
		"operator_update": ot.HandleOperatorUpdate,
		"operator_delete": ot.HandleOperatorDelete,
	}
	for _, tool := range ot.GetTools() {
		s.AddTool(tool, handlers[tool.Name])
	}
	logging.Debug(subsystem, "Registered %d tools", len(handlers))
	return s
}

// ServeStdio blocks serving s on stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	logging.Info(subsystem, "Serving operator tools on stdio")
	return server.ServeStdio(s)
}
