package config

import (
	"time"
)

// SmscctlConfig is the top-level configuration structure for smscctl.
type SmscctlConfig struct {
	API           APIConfig           `yaml:"api"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	MockGateway   MockGatewayConfig   `yaml:"mockGateway"`
}

// APIConfig locates the message gateway's operator API.
type APIConfig struct {
	BaseURL        string        `yaml:"baseURL,omitempty"`        // e.g. "http://localhost:8080/api/v1"
	Token          string        `yaml:"token,omitempty"`          // Sent as a bearer token when set
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"` // Per round-trip deadline, 0 for none
}

// NotificationsConfig controls the console's toast.
type NotificationsConfig struct {
	Duration time.Duration `yaml:"duration,omitempty"` // Auto-dismiss delay (default: 6s)
}

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
}

// MockGatewayConfig configures `smscctl mock-gateway`.
type MockGatewayConfig struct {
	Listen string `yaml:"listen,omitempty"` // Address to bind (default: 127.0.0.1:8080)
	Seed   bool   `yaml:"seed,omitempty"`   // Preload the two stock operators
	Token  string `yaml:"token,omitempty"`  // Require this bearer token
}

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)
