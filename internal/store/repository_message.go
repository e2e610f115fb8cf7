package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
)

// messageRepository is the SQL implementation of [MessageRepository] over
// the "chats" table. Every operation is a single statement.
type messageRepository struct {
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Append assigns an id and timestamp to msg, inserts it and returns the
// stored record. The ciphertext column is never written.
func (r *messageRepository) Append(ctx context.Context, msg models.NewMessage) (models.Message, error) {
	log := logger.FromContext(ctx)

	id, err := r.ids.Generate()
	if err != nil {
		return models.Message{}, err
	}

	stored := models.Message{
		ID:          id,
		SenderID:    msg.SenderID,
		SenderAlias: msg.SenderAlias,
		Text:        msg.Text,
		Kind:        msg.Kind,
		MediaRef:    msg.MediaRef,
		CreatedAt:   r.now(),
	}

	query, args, err := buildInsertMessageQuery(r.db.builder, stored)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*messageRepository.Append").
			Str("sender_id", msg.SenderID).
			Msg("error inserting message")
		return models.Message{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return stored, nil
}

// ListRecent returns the newest messages in chronological order. limit is
// normalized to [1, MaxMessageLimit] with DefaultMessageLimit for
// non-positive values. An empty table yields an empty, non-nil slice.
func (r *messageRepository) ListRecent(ctx context.Context, limit int) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecentMessagesQuery(r.db.builder, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListRecent").Int("limit", limit).Msg("error listing messages")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, normalizeMessageLimit(limit))
	for rows.Next() {
		var (
			msg        models.Message
			kind       string
			ciphertext sql.NullString
			mediaRef   sql.NullString
		)

		if err = rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.SenderAlias,
			&msg.Text,
			&ciphertext,
			&kind,
			&mediaRef,
			&msg.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListRecent").Msg("error scanning message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		msg.Kind = models.MessageKind(kind)
		msg.CreatedAt = msg.CreatedAt.UTC()
		if ciphertext.Valid {
			msg.Ciphertext = &ciphertext.String
		}
		if mediaRef.Valid {
			msg.MediaRef = &mediaRef.String
		}

		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.ListRecent").Msg("error iterating message rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	// newest first from the database, oldest first to the caller
	slices.Reverse(messages)

	return messages, nil
}

// PurgeAll removes the whole history in one DELETE.
func (r *messageRepository) PurgeAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeMessagesQuery(r.db.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.PurgeAll").Msg("error purging messages")
		return 0, r.db.wrapError(ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.wrapError(ErrExecutingStatement, err)
	}

	return deleted, nil
}
