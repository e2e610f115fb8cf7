package service

import (
	"context"

	"github.com/MKhiriev/vero/internal/validators"
	"github.com/MKhiriev/vero/models"
)

// ChatValidationService rejects malformed chat requests before they reach
// the wrapped ChatService. The session is checked first, so an anonymous
// caller always gets ErrUnauthenticated rather than a validation error.
type ChatValidationService struct {
	inner     ChatService
	validator validators.Validator
}

func NewChatValidationService() ChatServiceWrapper {
	return &ChatValidationService{
		validator: validators.NewChatValidator(),
	}
}

func (v *ChatValidationService) GetMessages(ctx context.Context, session models.Session, limit int) ([]models.Message, error) {
	return v.inner.GetMessages(ctx, session, limit)
}

func (v *ChatValidationService) SendMessage(ctx context.Context, session models.Session, req models.SendMessageRequest) (models.Message, error) {
	if session.IsZero() {
		return models.Message{}, ErrUnauthenticated
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Message{}, err
	}

	return v.inner.SendMessage(ctx, session, req)
}

func (v *ChatValidationService) Purge(ctx context.Context, session models.Session) (int64, error) {
	return v.inner.Purge(ctx, session)
}

func (v *ChatValidationService) Wrap(wrapped ChatService) ChatService {
	v.inner = wrapped
	return v
}
