// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PurgePolicy names who may purge the whole chat history.
type PurgePolicy string

const (
	// PurgeAnyUser lets every authenticated user purge. This is the
	// historical behavior of the chat.
	PurgeAnyUser PurgePolicy = "any"

	// PurgeAdminOnly restricts purging to [RoleAdmin] sessions.
	PurgeAdminOnly PurgePolicy = "admin"
)

// Valid reports whether p is a known policy.
func (p PurgePolicy) Valid() bool {
	return p == PurgeAnyUser || p == PurgeAdminOnly
}

// Allows reports whether a session with the given role may purge under p.
func (p PurgePolicy) Allows(role Role) bool {
	switch p {
	case PurgeAnyUser:
		return true
	case PurgeAdminOnly:
		return role == RoleAdmin
	}
	return false
}
