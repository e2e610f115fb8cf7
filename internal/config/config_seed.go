package config

import (
	"fmt"

	"dario.cat/mergo"
	"golang.org/x/crypto/bcrypt"
)

// GetSeedConfig loads the subset of the server configuration the seeder
// needs: the database and the bcrypt cost. Defaults are overridden by
// environment variables; no session secret is required.
func GetSeedConfig() (*StructuredConfig, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, fmt.Errorf("error get seed config: %w", err)
	}

	cfg := defaultConfig()
	if err := mergo.Merge(cfg, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		return nil, fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.App.PasswordCost < bcrypt.MinCost || cfg.App.PasswordCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: password cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordCost)
	}

	return cfg, nil
}
