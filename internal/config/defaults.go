// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/vero/models"
)

const (
	defaultSessionDuration = 7 * 24 * time.Hour
	defaultPasswordCost    = 12
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:     "development",
			TokenIssuer:     "vero",
			SessionDuration: defaultSessionDuration,
			PasswordCost:    defaultPasswordCost,
			PurgePolicy:     models.PurgeAnyUser,
			LoginRateLimit:  10,
			LoginRateWindow: time.Minute,
			Version:         "dev",
		},
		Storage: Storage{
			DB: DB{
				Name:         "vero",
				MaxOpenConns: 10,
			},
			Media: Media{
				Bucket:       "media",
				Region:       "us-east-1",
				UploadExpiry: 15 * time.Minute,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			HealthInterval: 30 * time.Second,
		},
	}
}
