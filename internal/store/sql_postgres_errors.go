package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells DB.inTx whether a failed transaction is worth
// running again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier classifies pgx errors by SQLSTATE class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports Retryable for lost connections (class 08), rolled back
// transactions such as serialization failures and deadlocks (class 40) and
// server restarts (class 57, except a cancelled statement). Everything else,
// including non-postgres errors, is NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch code := pgErr.Code; {
	case code == pgerrcode.QueryCanceled:
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
