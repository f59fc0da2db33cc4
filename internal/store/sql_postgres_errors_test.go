package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "not a postgres error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "wrapped deadlock", err: fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "statement cancelled", err: pgError(pgerrcode.QueryCanceled), want: NonRetryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_IsUniqueViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(fmt.Errorf("insert group: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("boom")))
}
