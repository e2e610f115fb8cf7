// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, cookie parsing,
// HTTP response writing, HTTP client initialization, session token signing
// and validation, and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/vero/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session gate stores the verified
// [models.Session] of the caller.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// SessionFromContext retrieves the caller's session from the context.
//
// Returns the session and an ok flag:
//   - ok == true : a non-zero session is present
//   - ok == false: the value is missing, has an unexpected type or is zero
//
// Example usage:
//
//	session, ok := utils.SessionFromContext(ctx)
//	if !ok {
//	    // caller is anonymous
//	}
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok || s.IsZero() {
		return models.Session{}, false
	}
	return s, true
}
