package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names the SQL flavour spoken by a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is a connection pool together with the query builder and error
// classifier of its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewDB opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" DSNs are served by pgx, "sqlite://" and "file:" DSNs by
// SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
}

// Migrate applies the embedded schema of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// wrapError attaches sentinel to err and, depending on how the dialect
// classifies err, ErrConflict or ErrUnavailable.
func (db *DB) wrapError(sentinel, err error) error {
	var class ErrorClassification
	if db.errorClassificator != nil {
		class = db.errorClassificator.Classify(err)
	}

	switch class {
	case Conflict:
		return fmt.Errorf("%w: %w: %w", ErrConflict, sentinel, err)
	case Transient:
		return fmt.Errorf("%w: %w: %w", ErrUnavailable, sentinel, err)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

// redactDSN strips everything after the scheme so credentials never reach
// logs or error messages.
func redactDSN(dsn string) string {
	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		return "<invalid>"
	}
	return scheme + "://..."
}
