package service

import (
	"errors"

	"github.com/MKhiriev/vero/internal/validators"
)

var (
	// ErrInvalidInput is wrapped by every *validators.ValidationError.
	ErrInvalidInput = validators.ErrInvalidInput

	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrMediaDisabled         = errors.New("media uploads are not configured")
	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrInvalidRole           = errors.New("invalid role")
)
