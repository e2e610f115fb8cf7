// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientAdapter holds network settings used by the chat client.
type ClientAdapter struct {
	// ServerURL is the base URL of the vero server.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the chat CLI.
type ClientConfig struct {
	// Adapter contains the server URL and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// SessionFile is where the CLI keeps the session cookie between runs.
	// Env: CLIENT_SESSION_FILE
	SessionFile string `env:"CLIENT_SESSION_FILE"`
}

// GetClientConfig builds and validates the client configuration from
// defaults and environment variables. Command-line overrides are applied by
// the caller before use.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		SessionFile: defaultSessionFile(),
	}

	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, cfg.validate()
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".vero-session"
	}

	return filepath.Join(dir, "vero", "session")
}
