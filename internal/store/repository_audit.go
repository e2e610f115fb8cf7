package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
)

type auditRepository struct {
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Append stores entry. Missing id and timestamp are filled in.
func (r *auditRepository) Append(ctx context.Context, entry models.AuditEntry) error {
	log := logger.FromContext(ctx)

	if entry.ID == "" {
		id, err := r.ids.Generate()
		if err != nil {
			return err
		}
		entry.ID = id
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.now()
	}

	details := []byte("{}")
	if len(entry.Details) > 0 {
		var err error
		if details, err = json.Marshal(entry.Details); err != nil {
			return fmt.Errorf("%w: %w", ErrMarshalingDetails, err)
		}
	}

	query, args, err := buildInsertAuditEntryQuery(r.db.builder, entry, string(details))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*auditRepository.Append").
			Str("user_id", entry.UserID).
			Str("action", string(entry.Action)).
			Msg("error appending audit entry")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}
