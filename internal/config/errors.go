// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by validate when required configuration is
// missing or invalid.
var (
	// ErrMissingSessionSecret is returned when no session signing secret was
	// provided. There is intentionally no fallback value.
	ErrMissingSessionSecret = errors.New("session secret is required")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive session duration or unknown purge policy).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listener address was given.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
