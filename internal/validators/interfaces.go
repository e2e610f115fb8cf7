// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound chat requests before any service touches
// storage.
//
// A Validator inspects a value and optionally only the named fields of it.
// Field-level failures are reported together as a *ValidationError, which
// unwraps to ErrInvalidInput so that transports can map it to a 400 response
// and echo the per-field details.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
