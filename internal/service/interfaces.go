// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/vero/models"
)

// AuthService verifies credentials and manages accounts.
type AuthService interface {
	// VerifyCredentials returns the user whose username and password match
	// req. Unknown users and wrong passwords both yield ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Whoami returns the fresh account record of the session's user.
	Whoami(ctx context.Context, session models.Session) (models.User, error)

	// HashPassword returns a salted bcrypt hash of password.
	HashPassword(password string) (string, error)

	// SeedUser creates the account or replaces its password and role.
	SeedUser(ctx context.Context, username, password string, role models.Role) (models.User, error)
}

// SessionService issues and verifies the signed session cookie.
type SessionService interface {
	IssueSession(user models.User) (string, *http.Cookie, error)
	ReadSession(token string) (models.Session, bool)
	ClearSession() *http.Cookie
	CookieName() string
}

// ChatService is the shared chat history seen by authenticated users.
type ChatService interface {
	GetMessages(ctx context.Context, session models.Session, limit int) ([]models.Message, error)
	SendMessage(ctx context.Context, session models.Session, req models.SendMessageRequest) (models.Message, error)
	Purge(ctx context.Context, session models.Session) (int64, error)
}

// ChatServiceWrapper decorates a ChatService with additional behavior such
// as request validation.
type ChatServiceWrapper interface {
	Wrap(ChatService) ChatService
}

// MediaService hands out presigned upload URLs for image and voice messages.
type MediaService interface {
	PresignUpload(ctx context.Context, session models.Session, req models.MediaUploadRequest) (models.MediaUpload, error)
}

// HealthService reports database reachability.
type HealthService interface {
	// CheckDB pings the database and returns its logical name.
	CheckDB(ctx context.Context) (string, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
