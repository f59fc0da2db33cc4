package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/handler"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/workers"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	workers    *workers.Workers
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewServer builds a Server for every transport enabled in cfg. The workers
// run alongside the transports and may be nil.
func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{workers: workers, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *server) run(parent context.Context) error {
	for i, t := range s.transports {
		if err := t.listen(); err != nil {
			for _, bound := range s.transports[:i] {
				_ = bound.close()
			}
			return err
		}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range s.transports {
		g.Go(func() error { return t.serve(ctx) })
	}
	if s.workers != nil {
		g.Go(func() error { return s.workers.Run(ctx) })
	}

	// stop every transport once a signal arrives or anything fails
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, t := range s.transports {
			t.shutdown(shutdownCtx)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
