package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
)

type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

func TestWorkers_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var started sync.WaitGroup
	started.Add(2)

	blocking := funcWorker(func(ctx context.Context) error {
		started.Done()
		<-ctx.Done()
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- NewWorkers(blocking, blocking).Run(ctx) }()

	started.Wait()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_FirstFailureCancelsTheRest(t *testing.T) {
	errBoom := errors.New("boom")
	failing := funcWorker(func(context.Context) error { return errBoom })

	var stopped bool
	waiting := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		stopped = true
		return nil
	})

	err := NewWorkers(failing, waiting).Run(context.Background())

	require.ErrorIs(t, err, errBoom)
	assert.True(t, stopped)
}

func TestWorkers_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
}

type fakeArchiver struct {
	mu    sync.Mutex
	calls []time.Time
	moved int64
	err   error
	done  chan struct{}
}

func (f *fakeArchiver) ArchiveTransactions(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	if len(f.calls) == 2 {
		close(f.done)
	}
	return f.moved, f.err
}

type archivedRecorder struct {
	mu    sync.Mutex
	total int64
}

func (r *archivedRecorder) RecordCall(string, string, string, time.Duration) {}
func (r *archivedRecorder) RecordRateLimited()                               {}
func (r *archivedRecorder) RecordArchived(count int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total += count
}

func TestArchiveWorker_ArchivesOnEveryTick(t *testing.T) {
	tests := []struct {
		name      string
		moved     int64
		err       error
		wantTotal int64
	}{
		{name: "moves transactions", moved: 3, wantTotal: 6},
		{name: "failed pass is retried", err: errors.New("database is locked"), wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archiver := &fakeArchiver{moved: tt.moved, err: tt.err, done: make(chan struct{})}
			recorder := &archivedRecorder{}
			fixed := time.Unix(1_700_000_000, 0)

			w := NewArchiveWorker(archiver, time.Millisecond, recorder, logger.Nop())
			w.now = func() time.Time { return fixed }

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()

			select {
			case <-archiver.done:
			case <-time.After(time.Second):
				t.Fatal("archiver was not called twice")
			}
			cancel()
			require.NoError(t, <-done)

			archiver.mu.Lock()
			assert.Equal(t, fixed, archiver.calls[0])
			archiver.mu.Unlock()

			recorder.mu.Lock()
			defer recorder.mu.Unlock()
			assert.GreaterOrEqual(t, recorder.total, tt.wantTotal)
			if tt.err != nil {
				assert.Zero(t, recorder.total)
			}
		})
	}
}

func TestArchiveWorker_DisabledInterval(t *testing.T) {
	archiver := &fakeArchiver{done: make(chan struct{})}

	err := NewArchiveWorker(archiver, 0, nil, logger.Nop()).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, archiver.calls)
}
