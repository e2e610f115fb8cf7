// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditAction names an audited event.
type AuditAction string

const (
	AuditLogin AuditAction = "login"
	AuditPurge AuditAction = "purge"
)

// AuditEntry is a best-effort record of a security-relevant event.
// Nothing in the application reads it back to make decisions.
type AuditEntry struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Action    AuditAction    `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

// TableName returns the name of the database table
// associated with the AuditEntry model.
func (a AuditEntry) TableName() string {
	return "audit_log"
}
