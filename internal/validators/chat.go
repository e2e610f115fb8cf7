package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/vero/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They double as the field names reported in validation error details.
const (
	// FieldUsername targets the login name of a login request.
	FieldUsername = "username"

	// FieldPassword targets the password of a login request.
	FieldPassword = "password"

	// FieldText targets the body of a chat message.
	FieldText = "text"

	// FieldKind targets the message or media type.
	FieldKind = "type"

	// FieldMediaRef targets the stored media reference of a message.
	FieldMediaRef = "mediaId"
)

const (
	// MaxTextLength is the maximum message length in characters.
	MaxTextLength = 10000

	// MaxMediaRefLength is the maximum media reference length in characters.
	MaxMediaRefLength = 512
)

// ChatValidator validates the inbound requests of the chat API:
// LoginRequest, SendMessageRequest and MediaUploadRequest.
//
// Unlike a fail-fast validator it reports every failing field at once, so
// the client can show all problems in one round trip.
type ChatValidator struct {
}

// NewChatValidator constructs a ChatValidator and returns it as a Validator.
func NewChatValidator() Validator {
	return &ChatValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Failures are returned as *ValidationError, unknown
// types as ErrUnsupportedType.
func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.SendMessageRequest:
		return v.validateSendMessage(value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessage(*value, fields...)
	case models.MediaUploadRequest:
		return v.validateMediaUpload(value, fields...)
	case *models.MediaUploadRequest:
		return v.validateMediaUpload(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ChatValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				errs.add(FieldUsername, "username is required")
			}
		case FieldPassword:
			if request.Password == "" {
				errs.add(FieldPassword, "password is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *ChatValidator) validateSendMessage(request models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldKind, FieldMediaRef}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldText:
			switch {
			case strings.TrimSpace(request.Text) == "":
				errs.add(FieldText, "text must not be empty")
			case utf8.RuneCountInString(request.Text) > MaxTextLength:
				errs.add(FieldText, fmt.Sprintf("text must be at most %d characters", MaxTextLength))
			}
		case FieldKind:
			// an empty kind means text
			if request.Kind != "" && !request.Kind.Valid() {
				errs.add(FieldKind, "type must be one of text, image, voice")
			}
		case FieldMediaRef:
			if request.MediaRef != nil && utf8.RuneCountInString(*request.MediaRef) > MaxMediaRefLength {
				errs.add(FieldMediaRef, fmt.Sprintf("mediaId must be at most %d characters", MaxMediaRefLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *ChatValidator) validateMediaUpload(request models.MediaUploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldKind:
			if !request.Kind.IsMedia() {
				errs.add(FieldKind, "type must be one of image, voice")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
