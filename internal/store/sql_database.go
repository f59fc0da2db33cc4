package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/migrations"
)

// maxTxAttempts bounds how often a transaction is replayed after a
// retryable failure.
const maxTxAttempts = 3

// runner is satisfied by both *sql.DB and *sql.Tx.
type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps the replica database connection together with the dialect
// specific query builder and error classifier.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// inTx runs fn inside a transaction. Failures the classifier marks as
// retryable replay the whole transaction up to maxTxAttempts times.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying transaction")
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logger.Err(rbErr).Str("func", "*DB.runTx").Msg("rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// nextCounter increments the named counter and returns its new value. The
// first call for a name returns 1.
func (db *DB) nextCounter(ctx context.Context, r runner, name string) (uint64, error) {
	query, args, err := db.builder.
		Insert("counters").
		Columns("name", "value").
		Values(name, 1).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = counters.value + 1 RETURNING value").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return uint64(value), nil
}

// ErrorClassificator decides how a driver error is handled.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique or primary key
	// constraint failure.
	IsUniqueViolation(err error) bool
}
