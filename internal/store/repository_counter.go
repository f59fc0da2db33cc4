package store

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
)

type counterRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCounterRepository constructs a [CounterRepository] backed by the
// counters table.
func NewCounterRepository(db *DB, logger *logger.Logger) CounterRepository {
	return &counterRepository{db: db, logger: logger}
}

// Next increments the named counter and returns the new value.
func (r *counterRepository) Next(ctx context.Context, name string) (uint64, error) {
	value, err := r.db.nextCounter(ctx, r.db, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*counterRepository.Next").Str("counter", name).Msg("error incrementing counter")
		return 0, err
	}
	return value, nil
}
