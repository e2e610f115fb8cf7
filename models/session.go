// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the name of the cookie carrying the session token.
const SessionCookieName = "vero_session"

// Session is the decoded content of a session token. It is never stored on
// the server; the client holds it as a signed cookie.
type Session struct {
	UserID    string
	Username  string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsZero reports whether s carries no identity, i.e. the caller is anonymous.
func (s Session) IsZero() bool {
	return s.UserID == ""
}

// SessionClaims is the JWT claim set signed into a session token.
type SessionClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`

	jwt.RegisteredClaims
}

// Session converts verified claims into a [Session].
func (c *SessionClaims) Session() Session {
	s := Session{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}

	return s
}
