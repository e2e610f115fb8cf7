// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SendMessageRequest is the body of POST /api/chats.
type SendMessageRequest struct {
	Text     string      `json:"text"`
	Kind     MessageKind `json:"type"`
	MediaRef *string     `json:"mediaId,omitempty"`
}

// MediaUploadRequest is the body of POST /api/media/upload-url.
type MediaUploadRequest struct {
	Kind MessageKind `json:"type"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
}

// WhoamiResponse is returned by GET /api/auth/me.
type WhoamiResponse struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
}

// LogoutResponse is returned by POST /api/auth/logout.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessagesResponse is returned by GET /api/chats.
type MessagesResponse struct {
	Success  bool      `json:"success"`
	Messages []Message `json:"messages"`
}

// MessageResponse is returned by POST /api/chats.
type MessageResponse struct {
	Success bool    `json:"success"`
	Message Message `json:"message"`
}

// PurgeResponse is returned by DELETE /api/chats.
type PurgeResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deletedCount"`
}

// MediaUpload is a presigned upload slot for a media message.
type MediaUpload struct {
	MediaRef  string    `json:"mediaId"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HealthResponse is returned by GET /api/health/db.
type HealthResponse struct {
	OK bool   `json:"ok"`
	DB string `json:"db,omitempty"`
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
