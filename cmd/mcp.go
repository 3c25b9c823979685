package cmd

import (
	"context"

	"smscctl/internal/app"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve operator tools over MCP stdio",
		Long: `Runs an MCP server on stdin/stdout exposing operator_list,
operator_create, operator_update and operator_delete. Each tool goes through
the same validation, write and refresh sequence as the console, and returns
the console's notification text. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(app.ModeMCP, false, app.Overrides{})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return application.Run(ctx)
		},
	}
}
