// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not a JSON object of
	// the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidLimit is returned when the limit query parameter of
	// GET /api/chats is not an integer.
	ErrInvalidLimit = errors.New("limit must be an integer")

	// ErrTooManyRequests is returned when a client exceeds the login rate.
	ErrTooManyRequests = errors.New("too many login attempts")
)
