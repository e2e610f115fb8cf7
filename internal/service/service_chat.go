package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/store"
	"github.com/MKhiriev/vero/models"
)

type chatService struct {
	messageRepository store.MessageRepository
	auditRepository   store.AuditRepository

	purgePolicy models.PurgePolicy

	now func() time.Time

	logger *logger.Logger
}

// NewChatService returns the bare chat service. Request validation is added
// by wrapping it with NewChatValidationService.
func NewChatService(messageRepository store.MessageRepository, auditRepository store.AuditRepository, purgePolicy models.PurgePolicy, logger *logger.Logger) ChatService {
	if purgePolicy == "" {
		purgePolicy = models.PurgeAnyUser
	}

	return &chatService{
		messageRepository: messageRepository,
		auditRepository:   auditRepository,
		purgePolicy:       purgePolicy,
		now:               time.Now,
		logger:            logger,
	}
}

func (c *chatService) GetMessages(ctx context.Context, session models.Session, limit int) ([]models.Message, error) {
	if session.IsZero() {
		return nil, ErrUnauthenticated
	}

	messages, err := c.messageRepository.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages failed: %w", err)
	}

	return messages, nil
}

// SendMessage stores a message authored by the session's user. An empty kind
// is stored as text.
func (c *chatService) SendMessage(ctx context.Context, session models.Session, req models.SendMessageRequest) (models.Message, error) {
	if session.IsZero() {
		return models.Message{}, ErrUnauthenticated
	}

	kind := req.Kind
	if kind == "" {
		kind = models.KindText
	}

	message, err := c.messageRepository.Append(ctx, models.NewMessage{
		SenderID:    session.UserID,
		SenderAlias: session.Username,
		Text:        req.Text,
		Kind:        kind,
		MediaRef:    req.MediaRef,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("storing message failed: %w", err)
	}

	return message, nil
}

// Purge deletes the whole chat history if the purge policy allows the
// session's role, and records who did it.
func (c *chatService) Purge(ctx context.Context, session models.Session) (int64, error) {
	log := logger.FromContext(ctx)

	if session.IsZero() {
		return 0, ErrUnauthenticated
	}

	if !c.purgePolicy.Allows(session.Role) {
		log.Info().Str("user_id", session.UserID).Str("role", string(session.Role)).Msg("purge denied by policy")
		return 0, fmt.Errorf("%w: purge is restricted to admins", ErrForbidden)
	}

	deleted, err := c.messageRepository.PurgeAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("purging messages failed: %w", err)
	}

	entry := models.AuditEntry{
		UserID:    session.UserID,
		Action:    models.AuditPurge,
		Timestamp: c.now().UTC(),
		Details:   map[string]any{"deletedCount": deleted, "username": session.Username},
	}
	if err = c.auditRepository.Append(ctx, entry); err != nil {
		log.Err(err).Str("user_id", session.UserID).Msg("writing purge audit entry failed")
	}

	log.Info().Str("user_id", session.UserID).Int64("deleted", deleted).Msg("chat history purged")

	return deleted, nil
}
