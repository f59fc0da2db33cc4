package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
)

// newMockDB returns a postgres flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		dialect:            config.DriverPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

// newSQLiteDB opens a migrated sqlite database in a temp dir.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "replica.db"),
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
