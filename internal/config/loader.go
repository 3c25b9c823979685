package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"smscctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/smscctl"
	projectConfigDir = ".smscctl"
	configFileName   = "config.yaml"

	EnvAPIURL = "SMSCCTL_API_URL"
	EnvToken  = "SMSCCTL_TOKEN"
)

// LoadConfig loads the smscctl configuration by layering default, user,
// project and explicit file settings, then the environment. explicitPath may
// be empty; when set the file must exist.
func LoadConfig(explicitPath string) (SmscctlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = mergeIfExists(config, userConfigPath); err != nil {
		return SmscctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = mergeIfExists(config, projectConfigPath); err != nil {
		return SmscctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	// 4. File named on the command line
	if explicitPath != "" {
		explicit, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return SmscctlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicit)
	}

	// 5. Environment
	config = applyEnv(config)

	config.API.Token = expandEnv(config.API.Token)
	config.API.BaseURL = expandEnv(config.API.BaseURL)
	config.MockGateway.Token = expandEnv(config.MockGateway.Token)

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func mergeIfExists(base SmscctlConfig, path string) (SmscctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded %s", path)
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a SmscctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (SmscctlConfig, error) {
	var config SmscctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SmscctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return SmscctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay SmscctlConfig) SmscctlConfig {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Token != "" {
		merged.API.Token = overlay.API.Token
	}
	if overlay.API.RequestTimeout != 0 {
		merged.API.RequestTimeout = overlay.API.RequestTimeout
	}

	if overlay.Notifications.Duration != 0 {
		merged.Notifications.Duration = overlay.Notifications.Duration
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Format != "" {
		merged.Logging.Format = overlay.Logging.Format
	}

	if overlay.MockGateway.Listen != "" {
		merged.MockGateway.Listen = overlay.MockGateway.Listen
	}
	if overlay.MockGateway.Seed {
		merged.MockGateway.Seed = true
	}
	if overlay.MockGateway.Token != "" {
		merged.MockGateway.Token = overlay.MockGateway.Token
	}

	return merged
}

func applyEnv(config SmscctlConfig) SmscctlConfig {
	if v, ok := osLookupEnv(EnvAPIURL); ok && v != "" {
		config.API.BaseURL = v
	}
	if v, ok := osLookupEnv(EnvToken); ok && v != "" {
		config.API.Token = v
	}
	return config
}

// expandEnv resolves ${VAR} and ${VAR:-default} references.
func expandEnv(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	return os.Expand(s, func(key string) string {
		name, def, hasDefault := strings.Cut(key, ":-")
		if v, ok := osLookupEnv(name); ok && v != "" {
			return v
		}
		if hasDefault {
			return def
		}
		return ""
	})
}

// Validate reports settings that cannot work.
func (c SmscctlConfig) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.baseURL %q must be an absolute http(s) URL", c.API.BaseURL)
	}
	if c.API.RequestTimeout < 0 {
		return fmt.Errorf("api.requestTimeout must not be negative")
	}
	switch c.Logging.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("logging.format %q must be %q or %q", c.Logging.Format, LogFormatText, LogFormatJSON)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
