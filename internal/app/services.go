package app

import (
	"fmt"

	"smscctl/internal/console"
	"smscctl/internal/gateway"
	"smscctl/internal/notify"
)

// Services holds the gateway client and the console controller built on it.
type Services struct {
	Client     *gateway.Client
	Controller *console.Controller
}

// InitializeServices wires the client, store and controller for cfg.Mode.
// Only the interactive console lets notifications expire; the one-shot
// modes read the final notification after the command settles.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.Settings == nil {
		return nil, fmt.Errorf("configuration has not been loaded")
	}
	settings := *cfg.Settings

	client, err := gateway.NewClient(gateway.Config{
		BaseURL: settings.API.BaseURL,
		Token:   settings.API.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway client: %w", err)
	}

	duration := settings.Notifications.Duration
	if cfg.Mode != ModeConsole {
		duration = 0
	}
	store := console.NewStore(notify.New(duration))
	ctrl := console.NewController(store, client, console.WithRequestTimeout(settings.API.RequestTimeout))

	return &Services{
		Client:     client,
		Controller: ctrl,
	}, nil
}
