package cmd

import (
	"context"

	"smscctl/internal/app"

	"github.com/spf13/cobra"
)

var (
	mockListen string
	mockSeed   bool
	mockToken  string
)

func newMockGatewayCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "mock-gateway",
		Short: "Serve an in-memory operator API for local use",
		Long: `Serves the operator API the console talks to, backed by memory.
Ids are assigned sequentially from 1, names must be unique and new operators
are "active". Use --seed to start with the two stock operators.

Point the console at it with --api-url http://<listen>/api/v1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(app.ModeMockGateway, false, app.Overrides{
				Listen:       mockListen,
				Seed:         mockSeed,
				GatewayToken: mockToken,
			})
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
	c.Flags().StringVar(&mockListen, "listen", "", "Address to listen on (default 127.0.0.1:8080)")
	c.Flags().BoolVar(&mockSeed, "seed", false, "Preload Operator 1 and Operator 2")
	c.Flags().StringVar(&mockToken, "require-token", "", "Reject requests without this bearer token")
	return c
}
