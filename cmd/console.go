package cmd

import (
	"context"
	"fmt"

	"smscctl/internal/app"

	"github.com/spf13/cobra"
)

// consoleDebug shows debug-level entries in the TUI activity log.
var consoleDebug bool

func newConsoleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "console",
		Short: "Start the interactive operator console",
		Long: `Starts a terminal UI listing the gateway's operators.

  a        add an operator          e/enter  edit the selected operator
  d        delete (no confirmation) r        refresh the list
  y        copy selected as JSON    L        activity log
  h        help                     q        quit

Every add, edit or delete is followed by a fresh list fetch; the table only
ever shows what the gateway returned.`,
		Args: cobra.NoArgs,
		RunE: runConsole,
	}
	c.Flags().BoolVar(&consoleDebug, "debug", false, "Show debug entries in the activity log")
	return c
}

func runConsole(cmd *cobra.Command, args []string) error {
	application, err := newApplication(app.ModeConsole, consoleDebug, app.Overrides{})
	if err != nil {
		return fmt.Errorf("failed to initialize console: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
