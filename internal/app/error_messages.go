// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vero server handlers and the chat client.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON error bodies. The client matches on some of them, so
// the wording is part of the API.
package app

const (
	// MsgValidationFailed accompanies 400 responses whose details list the
	// offending fields.
	MsgValidationFailed = "Validation failed"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidLimit is returned for a non-numeric limit query parameter.
	MsgInvalidLimit = "limit must be an integer"

	// MsgNotAuthenticated is returned when the session cookie is missing,
	// invalid, expired or belongs to a deleted user.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgForbidden is returned when the purge policy denies the caller.
	MsgForbidden = "Forbidden"

	// MsgNotFound is returned when the requested resource does not exist.
	MsgNotFound = "Not found"

	// MsgTooManyRequests is returned when login throttling rejects a request.
	MsgTooManyRequests = "Too many login attempts, try again later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve. Details are only logged.
	MsgInternalServerError = "Internal server error"

	// MsgLoggedOut is the message of a successful logout.
	MsgLoggedOut = "Logged out successfully"
)
