// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of a [User].
type Role string

const (
	// RoleAdmin is the owner account. Under the admin purge policy it is the
	// only role allowed to purge the chat history.
	RoleAdmin Role = "admin"

	// RolePartner is the second participant of the chat.
	RolePartner Role = "partner"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RolePartner
}

// User represents an account that can log in and chat.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned UUIDv7 identifier.
	ID string `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the password. It is never
	// serialized to clients.
	PasswordHash string `json:"-"`

	// Role is the access level of the account.
	Role Role `json:"role"`

	// EncryptionKey is an opaque per-user key kept for compatibility with
	// older clients. It is not used to encrypt anything on the server.
	EncryptionKey string `json:"-"`

	// CreatedAt is the timestamp when the account was first seeded.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt changes on every login and on every re-seed.
	UpdatedAt time.Time `json:"updatedAt"`

	// LastLogin is nil until the first successful login.
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public projection of the user returned by login.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// Profile returns the projection returned by whoami.
func (u User) Profile() UserProfile {
	return UserProfile{
		UserSummary: u.Summary(),
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}

// UserSummary is the minimal user view sent to clients.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// UserProfile extends [UserSummary] with login bookkeeping.
type UserProfile struct {
	UserSummary
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
