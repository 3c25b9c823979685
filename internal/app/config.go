package app

import (
	"smscctl/internal/config"
)

// Mode selects what the application runs.
type Mode int

const (
	// ModeConsole runs the interactive operator console.
	ModeConsole Mode = iota
	// ModeCLI runs one-shot operator commands; notifications never expire.
	ModeCLI
	// ModeMCP serves the operator tools over stdio.
	ModeMCP
	// ModeMockGateway serves the in-memory operator API.
	ModeMockGateway
)

func (m Mode) String() string {
	switch m {
	case ModeConsole:
		return "console"
	case ModeCLI:
		return "cli"
	case ModeMCP:
		return "mcp"
	case ModeMockGateway:
		return "mock-gateway"
	default:
		return "unknown"
	}
}

// Overrides are command-line values that win over every configuration layer.
// Empty fields leave the loaded value alone.
type Overrides struct {
	APIURL   string
	Token    string
	LogLevel string

	// Mock gateway
	Listen       string
	Seed         bool
	GatewayToken string
}

// Config holds the application configuration
type Config struct {
	// Mode of operation
	Mode Mode

	// ConfigPath is an extra file layered after the user and project files.
	ConfigPath string

	// Overrides from flags
	Overrides Overrides

	// Debug settings
	Debug bool

	// Version is reported by the MCP server.
	Version string

	// Settings is filled in by NewApplication.
	Settings *config.SmscctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(mode Mode, configPath string, debug bool) *Config {
	return &Config{
		Mode:       mode,
		ConfigPath: configPath,
		Debug:      debug,
	}
}

// apply copies non-empty overrides onto settings.
func (o Overrides) apply(settings config.SmscctlConfig) config.SmscctlConfig {
	if o.APIURL != "" {
		settings.API.BaseURL = o.APIURL
	}
	if o.Token != "" {
		settings.API.Token = o.Token
	}
	if o.LogLevel != "" {
		settings.Logging.Level = o.LogLevel
	}
	if o.Listen != "" {
		settings.MockGateway.Listen = o.Listen
	}
	if o.Seed {
		settings.MockGateway.Seed = true
	}
	if o.GatewayToken != "" {
		settings.MockGateway.Token = o.GatewayToken
	}
	return settings
}
