package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/metrics"
)

// ArchiveWorker periodically archives ledger transactions that fell out of
// the deduplication window. A failed pass is logged and retried on the next
// tick.
type ArchiveWorker struct {
	archiver TransactionArchiver
	interval time.Duration
	recorder metrics.CallRecorder
	now      func() time.Time

	logger *logger.Logger
}

func NewArchiveWorker(archiver TransactionArchiver, interval time.Duration, recorder metrics.CallRecorder, logger *logger.Logger) *ArchiveWorker {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	return &ArchiveWorker{
		archiver: archiver,
		interval: interval,
		recorder: recorder,
		now:      time.Now,
		logger:   logger,
	}
}

func (w *ArchiveWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		w.logger.Info().Msg("transaction archiving disabled")
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("archive worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("archive worker stopped")
			return nil
		case <-ticker.C:
			w.archiveOnce(ctx)
		}
	}
}

func (w *ArchiveWorker) archiveOnce(ctx context.Context) {
	moved, err := w.archiver.ArchiveTransactions(w.logger.WithContext(ctx), w.now())
	if err != nil {
		w.logger.Err(err).Msg("archiving transactions failed")
		return
	}

	w.recorder.RecordArchived(moved)
	if moved > 0 {
		w.logger.Info().Int64("moved", moved).Msg("transactions archived")
	}
}
