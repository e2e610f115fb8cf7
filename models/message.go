// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageKind is the content type of a chat message.
type MessageKind string

const (
	KindText  MessageKind = "text"
	KindImage MessageKind = "image"
	KindVoice MessageKind = "voice"
)

// Valid reports whether k is one of the known kinds.
func (k MessageKind) Valid() bool {
	switch k {
	case KindText, KindImage, KindVoice:
		return true
	}
	return false
}

// IsMedia reports whether messages of kind k reference stored media.
func (k MessageKind) IsMedia() bool {
	return k == KindImage || k == KindVoice
}

// Message is a single stored chat message.
//
// Text is stored in the clear. Ciphertext is part of the schema for a future
// end-to-end encrypted client and is never written by the server.
type Message struct {
	ID          string      `json:"id"`
	SenderID    string      `json:"senderId"`
	SenderAlias string      `json:"senderAlias"`
	Text        string      `json:"text"`
	Ciphertext  *string     `json:"ciphertext,omitempty"`
	Kind        MessageKind `json:"type"`
	MediaRef    *string     `json:"mediaId,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "chats"
}

// NewMessage is the input of a message append.
type NewMessage struct {
	SenderID    string
	SenderAlias string
	Text        string
	Kind        MessageKind
	MediaRef    *string
}
