// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/vero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestChatValidator_Dispatch(t *testing.T) {
	v := NewChatValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("login pointer", func(t *testing.T) {
		err := v.Validate(ctx, &models.LoginRequest{Username: "alice", Password: "pw"})
		require.NoError(t, err)
	})

	t.Run("send message pointer", func(t *testing.T) {
		err := v.Validate(ctx, &models.SendMessageRequest{Text: "hi"})
		require.NoError(t, err)
	})

	t.Run("media upload pointer", func(t *testing.T) {
		err := v.Validate(ctx, &models.MediaUploadRequest{Kind: models.KindImage})
		require.NoError(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.LoginRequest{}, "nope")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestChatValidator_Login(t *testing.T) {
	tests := []struct {
		name   string
		req    models.LoginRequest
		fields []string
	}{
		{name: "valid", req: models.LoginRequest{Username: "alice", Password: "secret"}},
		{name: "empty username", req: models.LoginRequest{Password: "secret"}, fields: []string{FieldUsername}},
		{name: "empty password", req: models.LoginRequest{Username: "alice"}, fields: []string{FieldPassword}},
		{name: "both empty", req: models.LoginRequest{}, fields: []string{FieldUsername, FieldPassword}},
	}

	v := NewChatValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.fields, fieldNames(t, err))
		})
	}
}

func TestChatValidator_Login_ScopedFields(t *testing.T) {
	v := NewChatValidator()

	err := v.Validate(context.Background(), models.LoginRequest{}, FieldPassword)

	assert.Equal(t, []string{FieldPassword}, fieldNames(t, err))
}

// ---------------------------------------------------------------------------
// SendMessage
// ---------------------------------------------------------------------------

func TestChatValidator_SendMessage(t *testing.T) {
	tests := []struct {
		name   string
		req    models.SendMessageRequest
		fields []string
	}{
		{name: "plain text", req: models.SendMessageRequest{Text: "hello"}},
		{name: "explicit kind", req: models.SendMessageRequest{Text: "look", Kind: models.KindImage, MediaRef: ptr("media/image/x")}},
		{name: "exactly max length", req: models.SendMessageRequest{Text: strings.Repeat("a", MaxTextLength)}},
		{name: "max length in multibyte runes", req: models.SendMessageRequest{Text: strings.Repeat("ж", MaxTextLength)}},
		{name: "empty text", req: models.SendMessageRequest{}, fields: []string{FieldText}},
		{name: "whitespace text", req: models.SendMessageRequest{Text: " \t\n "}, fields: []string{FieldText}},
		{name: "too long", req: models.SendMessageRequest{Text: strings.Repeat("a", MaxTextLength+1)}, fields: []string{FieldText}},
		{name: "unknown kind", req: models.SendMessageRequest{Text: "x", Kind: "video"}, fields: []string{FieldKind}},
		{name: "long media ref", req: models.SendMessageRequest{Text: "x", MediaRef: ptr(strings.Repeat("m", MaxMediaRefLength+1))}, fields: []string{FieldMediaRef}},
		{name: "everything wrong", req: models.SendMessageRequest{Kind: "gif", MediaRef: ptr(strings.Repeat("m", MaxMediaRefLength+1))}, fields: []string{FieldText, FieldKind, FieldMediaRef}},
	}

	v := NewChatValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.fields, fieldNames(t, err))
		})
	}
}

// ---------------------------------------------------------------------------
// MediaUpload
// ---------------------------------------------------------------------------

func TestChatValidator_MediaUpload(t *testing.T) {
	v := NewChatValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.MediaUploadRequest{Kind: models.KindImage}))
	require.NoError(t, v.Validate(ctx, models.MediaUploadRequest{Kind: models.KindVoice}))

	for _, kind := range []models.MessageKind{"", models.KindText, "video"} {
		err := v.Validate(ctx, models.MediaUploadRequest{Kind: kind})
		require.ErrorIs(t, err, ErrInvalidInput, "kind %q", kind)
		assert.Equal(t, []string{FieldKind}, fieldNames(t, err))
	}
}

// ---------------------------------------------------------------------------
// ValidationError
// ---------------------------------------------------------------------------

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(
		models.FieldError{Field: "a", Message: "bad"},
		models.FieldError{Field: "b", Message: "worse"},
	)

	assert.Equal(t, "invalid input: a: bad; b: worse", err.Error())
	assert.Equal(t, "invalid input", NewValidationError().Error())
}
