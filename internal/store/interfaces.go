// Package store is the persistence layer of vero. It owns the database
// connection, per-dialect error classification and the repositories for
// users, chat messages and the audit log.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/vero/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes account records.
type UserRepository interface {
	// FindByUsername returns the user with exactly this username or
	// ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindByID returns the user with this id or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (models.User, error)

	// TouchLastLogin sets last_login and updated_at of the user to at.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error

	// Upsert inserts user or, when the username exists, replaces its password
	// hash, role and encryption key. The stored record is returned.
	Upsert(ctx context.Context, user models.User) (models.User, error)
}

// MessageRepository stores the shared chat history.
type MessageRepository interface {
	// Append stores a new message with a fresh id and the current time.
	Append(ctx context.Context, msg models.NewMessage) (models.Message, error)

	// ListRecent returns up to limit newest messages, oldest first.
	ListRecent(ctx context.Context, limit int) ([]models.Message, error)

	// PurgeAll deletes every message and returns how many were removed.
	PurgeAll(ctx context.Context) (int64, error)
}

// AuditRepository is an append-only log of security events.
type AuditRepository interface {
	Append(ctx context.Context, entry models.AuditEntry) error
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
