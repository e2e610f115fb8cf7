// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/vero/models"
)

// StructuredJSONConfig is the on-disk JSON shape of the server config.
type StructuredJSONConfig struct {
	App struct {
		Environment     string   `json:"env"`
		SessionSecret   string   `json:"session_secret"`
		TokenIssuer     string   `json:"token_issuer"`
		SessionDuration Duration `json:"session_duration"`
		PasswordCost    int      `json:"password_cost"`
		PurgePolicy     string   `json:"purge_policy"`
		EncryptionSalt  string   `json:"encryption_salt"`
		LoginRateLimit  int      `json:"login_rate_limit"`
		LoginRateWindow Duration `json:"login_rate_window"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			Name         string `json:"name"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Media struct {
			Bucket       string   `json:"bucket"`
			Region       string   `json:"region"`
			Endpoint     string   `json:"endpoint"`
			AccessKey    string   `json:"access_key"`
			SecretKey    string   `json:"secret_key"`
			UploadExpiry Duration `json:"upload_expiry"`
		} `json:"media,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment:     jsonCfg.App.Environment,
			SessionSecret:   jsonCfg.App.SessionSecret,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			PasswordCost:    jsonCfg.App.PasswordCost,
			PurgePolicy:     models.PurgePolicy(jsonCfg.App.PurgePolicy),
			EncryptionSalt:  jsonCfg.App.EncryptionSalt,
			LoginRateLimit:  jsonCfg.App.LoginRateLimit,
			LoginRateWindow: time.Duration(jsonCfg.App.LoginRateWindow),
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Name:         jsonCfg.Storage.DB.Name,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Media: Media{
				Bucket:       jsonCfg.Storage.Media.Bucket,
				Region:       jsonCfg.Storage.Media.Region,
				Endpoint:     jsonCfg.Storage.Media.Endpoint,
				AccessKey:    jsonCfg.Storage.Media.AccessKey,
				SecretKey:    jsonCfg.Storage.Media.SecretKey,
				UploadExpiry: time.Duration(jsonCfg.Storage.Media.UploadExpiry),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
