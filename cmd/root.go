package cmd

import (
	"os"

	"smscctl/internal/app"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every subcommand.
var (
	flagAPIURL     string
	flagToken      string
	flagConfigPath string
	flagLogLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smscctl",
	Short: "Manage the messaging operators of an SMS gateway",
	Long: `smscctl is the administrative console for a message gateway's operator
roster. It lists, adds, edits and deletes the downstream carriers the gateway
routes traffic through, either interactively in a terminal UI or one command
at a time for scripting.

Without a subcommand it starts the interactive console.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. rejected drafts, unreachable gateway)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "smscctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps the application for mode with the persistent flags applied.
func newApplication(mode app.Mode, debug bool, overrides app.Overrides) (*app.Application, error) {
	cfg := app.NewConfig(mode, flagConfigPath, debug)
	overrides.APIURL = flagAPIURL
	overrides.Token = flagToken
	overrides.LogLevel = flagLogLevel
	cfg.Overrides = overrides
	cfg.Version = rootCmd.Version
	return app.NewApplication(cfg)
}

func init() {
	// Assigned here rather than in the literal: runConsole reads rootCmd.Version.
	rootCmd.RunE = runConsole

	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Operator API base URL (default http://localhost:8080/api/v1, env SMSCCTL_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token for the operator API (env SMSCCTL_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Additional config file layered over ~/.config/smscctl and ./.smscctl")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.Flags().BoolVar(&consoleDebug, "debug", false, "Show debug entries in the activity log")

	rootCmd.AddCommand(newConsoleCmd())
	rootCmd.AddCommand(newOperatorsCmd())
	rootCmd.AddCommand(newMockGatewayCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
