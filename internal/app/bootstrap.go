package app

import (
	"context"
	"fmt"
	"os"

	"smscctl/internal/config"
	"smscctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs smscctl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the layered configuration, applies flag overrides,
// configures logging and initializes services.
func NewApplication(cfg *Config) (*Application, error) {
	settings, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load smscctl configuration: %w", err)
	}
	settings = cfg.Overrides.apply(settings)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Settings = &settings

	// stdout belongs to command output and, in MCP mode, to the protocol.
	logging.InitForCLI(logLevel(cfg), settings.Logging.Format, os.Stderr)
	logging.Debug("Bootstrap", "Loaded configuration (mode %s, gateway %s)", cfg.Mode, settings.API.BaseURL)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services { return a.services }

// Settings returns the effective configuration.
func (a *Application) Settings() config.SmscctlConfig { return *a.config.Settings }

// Run executes the long-running modes. ModeCLI has nothing to run; callers
// use Services directly.
func (a *Application) Run(ctx context.Context) error {
	switch a.config.Mode {
	case ModeConsole:
		return runTUIMode(ctx, a.config, a.services)
	case ModeMCP:
		return runMCPMode(ctx, a.config, a.services)
	case ModeMockGateway:
		return runMockGatewayMode(ctx, a.config)
	default:
		return fmt.Errorf("mode %s cannot be run", a.config.Mode)
	}
}

func logLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	return logging.ParseLevel(cfg.Settings.Logging.Level)
}
