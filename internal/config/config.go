package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds connection settings for the game client. Values come
// from an optional JSON file, overridden by environment variables.
type ClientConfig struct {
	ServerURL string `json:"server_url" env:"BOARDROOM_SERVER_URL"`
	Username  string `json:"username" env:"BOARDROOM_USERNAME"`
	Channel   string `json:"channel" env:"BOARDROOM_CHANNEL"`
	// DialTimeoutSeconds bounds the initial websocket dial.
	DialTimeoutSeconds int `json:"dial_timeout_seconds" env:"BOARDROOM_DIAL_TIMEOUT_SEC"`
}

var (
	cfg      *ClientConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadClientConfig loads the client configuration from the given path. A
// missing file is not an error; defaults and environment apply.
func LoadClientConfig(path string) error {
	loadOnce.Do(func() {
		cfg, loadErr = load(path)
	})
	return loadErr
}

// GetClientConfig returns the global client configuration.
func GetClientConfig() *ClientConfig {
	return cfg
}

func load(path string) (*ClientConfig, error) {
	c := &ClientConfig{
		ServerURL:          "ws://localhost:3000/websocket",
		Channel:            "default",
		DialTimeoutSeconds: 10,
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal client config: %w", err)
		}
	case os.IsNotExist(err):
		// Fall through to env and defaults.
	default:
		return nil, fmt.Errorf("failed to read client config: %w", err)
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse config environment: %w", err)
	}
	return c, nil
}
