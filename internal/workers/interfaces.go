// Package workers runs the replica's background jobs.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] runs a
// set of them together and stops all of them when one fails.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is done and returns nil
// on a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// TransactionArchiver moves ledger transactions older than their
// collection's tx window and permitted drift out of the live table.
type TransactionArchiver interface {
	ArchiveTransactions(ctx context.Context, now time.Time) (int64, error)
}
