// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the vero REST API.
//
// [ChatAdapter] hides the HTTP details from the CLI: it keeps the session
// cookie returned by login and replays it on every later call, and maps
// error statuses to the sentinel errors in errors.go so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/vero/models"
)

// ChatAdapter talks to a vero server on behalf of one user.
type ChatAdapter interface {
	// SetSession restores a session token saved by an earlier run.
	SetSession(token string)

	// Session returns the current session token, or "" when logged out.
	Session() string

	// Login verifies the credentials and keeps the session cookie from the
	// response.
	Login(ctx context.Context, username, password string) (models.UserSummary, error)

	// Logout asks the server to clear the cookie and forgets the local
	// session regardless of the outcome.
	Logout(ctx context.Context) error

	Whoami(ctx context.Context) (models.UserProfile, error)

	// ListMessages returns up to limit most recent messages, oldest first.
	// A limit of zero lets the server choose.
	ListMessages(ctx context.Context, limit int) ([]models.Message, error)

	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)

	// Purge deletes the whole history and returns the number of messages
	// removed.
	Purge(ctx context.Context) (int64, error)

	// RequestUploadURL asks for a presigned upload slot for an image or
	// voice message.
	RequestUploadURL(ctx context.Context, kind models.MessageKind) (models.MediaUpload, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
