package store

import (
	"time"

	"github.com/MKhiriev/vero/models"
	sq "github.com/Masterminds/squirrel"
)

// Message listing bounds.
const (
	DefaultMessageLimit = 50
	MaxMessageLimit     = 100
)

var (
	userColumns = []string{
		"id",
		"username",
		"password_hash",
		"role",
		"encryption_key",
		"created_at",
		"updated_at",
		"last_login",
	}

	messageColumns = []string{
		"id",
		"sender_id",
		"sender_alias",
		"text",
		"ciphertext",
		"kind",
		"media_ref",
		"created_at",
	}
)

// upsertUserSuffix replaces the credentials of an existing username.
// id, created_at and last_login survive re-seeding.
const upsertUserSuffix = `ON CONFLICT (username) DO UPDATE SET
		password_hash = excluded.password_hash,
		role = excluded.role,
		encryption_key = excluded.encryption_key,
		updated_at = excluded.updated_at`

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

func buildTouchLastLoginQuery(b sq.StatementBuilderType, id string, at time.Time) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("last_login", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("id", "username", "password_hash", "role", "encryption_key", "created_at", "updated_at").
		Values(user.ID, user.Username, user.PasswordHash, string(user.Role), user.EncryptionKey, user.CreatedAt, user.UpdatedAt).
		Suffix(upsertUserSuffix).
		ToSql()
}

func buildInsertMessageQuery(b sq.StatementBuilderType, msg models.Message) (string, []any, error) {
	var mediaRef any
	if msg.MediaRef != nil {
		mediaRef = *msg.MediaRef
	}

	return b.Insert(models.Message{}.TableName()).
		Columns("id", "sender_id", "sender_alias", "text", "kind", "media_ref", "created_at").
		Values(msg.ID, msg.SenderID, msg.SenderAlias, msg.Text, string(msg.Kind), mediaRef, msg.CreatedAt).
		ToSql()
}

func buildListRecentMessagesQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select(messageColumns...).
		From(models.Message{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(normalizeMessageLimit(limit))).
		ToSql()
}

func buildPurgeMessagesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(models.Message{}.TableName()).ToSql()
}

func buildInsertAuditEntryQuery(b sq.StatementBuilderType, entry models.AuditEntry, details string) (string, []any, error) {
	return b.Insert(models.AuditEntry{}.TableName()).
		Columns("id", "user_id", "action", "occurred_at", "details").
		Values(entry.ID, entry.UserID, string(entry.Action), entry.Timestamp, details).
		ToSql()
}

// normalizeMessageLimit maps non-positive limits to DefaultMessageLimit and
// caps the rest at MaxMessageLimit.
func normalizeMessageLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultMessageLimit
	case limit > MaxMessageLimit:
		return MaxMessageLimit
	}
	return limit
}
