package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"smscctl/internal/mcpserver"
	"smscctl/internal/mockgateway"
	"smscctl/internal/tui/controller"
	"smscctl/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting operator console against %s", services.Client.BaseURL())

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(logLevel(config))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(services.Controller, services.Client.BaseURL(), config.Debug, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// runMCPMode serves the operator tools on stdin/stdout until the client disconnects.
func runMCPMode(ctx context.Context, config *Config, services *Services) error {
	s := mcpserver.NewServer(services.Controller, config.Version)
	return mcpserver.ServeStdio(s)
}

// runMockGatewayMode serves the in-memory operator API until interrupted.
func runMockGatewayMode(ctx context.Context, config *Config) error {
	settings := config.Settings.MockGateway

	reg := mockgateway.NewRegistry()
	if settings.Seed {
		reg.Seed()
	}
	handler := mockgateway.NewServer(reg, mockgateway.Options{Token: settings.Token})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("CLI", "Mock gateway listening on http://%s%s (Ctrl+C to stop)", settings.Listen, mockgateway.BasePath)
	return mockgateway.ListenAndServe(ctx, settings.Listen, handler)
}
