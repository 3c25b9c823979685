package config

import (
	"smscctl/internal/notify"
)

const (
	DefaultBaseURL = "http://localhost:8080/api/v1"
	DefaultListen  = "127.0.0.1:8080"
)

// GetDefaultConfig returns the built-in configuration every layer is merged onto.
func GetDefaultConfig() SmscctlConfig {
	return SmscctlConfig{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Notifications: NotificationsConfig{
			Duration: notify.DefaultDuration,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		MockGateway: MockGatewayConfig{
			Listen: DefaultListen,
		},
	}
}
