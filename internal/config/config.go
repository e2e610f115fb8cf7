// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/vero/models"
)

// EnvironmentProduction is the value of [App.Environment] that turns on
// production-only behavior such as Secure session cookies.
const EnvironmentProduction = "production"

// StructuredConfig is the top-level configuration container for the vero
// server. It aggregates all sub-configurations and is populated by merging
// built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, password hashing and policy settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database and media bucket settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control sessions,
// password hashing and authorization policy.
type App struct {
	// Environment is the deployment environment name. "production" enables
	// Secure cookies.
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// SessionSecret is the HMAC key used to sign and verify session tokens.
	// There is no default; startup fails when it is empty.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionDuration is the lifetime of an issued session.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// PasswordCost is the bcrypt cost factor used for new password hashes.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`

	// PurgePolicy decides who may purge the chat history ("any" or "admin").
	// Env: APP_PURGE_POLICY
	PurgePolicy models.PurgePolicy `env:"PURGE_POLICY"`

	// EncryptionSalt is accepted for compatibility with older deployments.
	// The server does not use it.
	// Env: APP_ENCRYPTION_SALT
	EncryptionSalt string `env:"ENCRYPTION_SALT"`

	// LoginRateLimit is the number of login attempts allowed per client
	// address within LoginRateWindow. Zero disables throttling.
	// Env: APP_LOGIN_RATE_LIMIT
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT"`

	// LoginRateWindow is the fixed window used by login throttling.
	// Env: APP_LOGIN_RATE_WINDOW
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// SecureCookies reports whether session cookies must carry the Secure flag.
func (a App) SecureCookies() bool {
	return a.Environment == EnvironmentProduction
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Media holds the S3-compatible bucket used for image and voice uploads.
	Media Media `envPrefix:"MEDIA_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. "postgres://" and "postgresql://" DSNs
	// use pgx, "sqlite://" and "file:" DSNs use SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the logical database name reported by the health endpoint.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// MaxOpenConns caps the size of the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Media holds the object storage settings for media messages.
// Media uploads are enabled only when Endpoint is set.
type Media struct {
	// Bucket is the bucket name. Env: STORAGE_MEDIA_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the bucket region. Env: STORAGE_MEDIA_REGION
	Region string `env:"REGION"`

	// Endpoint is the base URL of the S3-compatible service.
	// Env: STORAGE_MEDIA_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey are static credentials for the service.
	// Env: STORAGE_MEDIA_ACCESS_KEY, STORAGE_MEDIA_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// UploadExpiry is how long a presigned upload URL stays valid.
	// Env: STORAGE_MEDIA_UPLOAD_EXPIRY
	UploadExpiry time.Duration `env:"UPLOAD_EXPIRY"`
}

// Enabled reports whether media uploads are configured.
func (m Media) Enabled() bool {
	return m.Endpoint != ""
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is how often the database health worker pings the
	// database. Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
