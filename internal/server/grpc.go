package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	myGRPC "github.com/MKhiriev/icrc7-dapp/internal/handler/grpc"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
)

// healthRefreshInterval is how often the health service status is refreshed.
const healthRefreshInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = ln
	return nil
}

func (g *grpcServer) serve(ctx context.Context) error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("launching gRPC server")
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	refreshed := make(chan struct{})
	go func() {
		defer close(refreshed)
		g.refresh(refreshCtx)
	}()

	err := g.server.Serve(g.gRPCNetListener)
	stopRefresh()
	<-refreshed
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) refresh(ctx context.Context) {
	ticker := time.NewTicker(healthRefreshInterval)
	defer ticker.Stop()

	for {
		g.handler.Refresh(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (g *grpcServer) close() error {
	return g.gRPCNetListener.Close()
}

func (g *grpcServer) shutdown(ctx context.Context) {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		g.logger.Info().Msg("gRPC server Shutdown")
	case <-ctx.Done():
		g.server.Stop()
		g.logger.Warn().Msg("gRPC server stopped before in-flight calls finished")
	}
}
