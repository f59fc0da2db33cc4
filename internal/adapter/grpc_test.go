package adapter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestGRPCHealthChecker_Check(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus("icrc7.Backend", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	checker, err := NewGRPCHealthChecker(lis.Addr().String())
	require.NoError(t, err)
	defer checker.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status, err := checker.Check(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "SERVING", status)

	status, err = checker.Check(ctx, "icrc7.Backend")
	require.NoError(t, err)
	assert.Equal(t, "NOT_SERVING", status)

	_, err = checker.Check(ctx, "unknown")
	assert.Error(t, err)
}

func TestNewGRPCHealthChecker_EmptyAddress(t *testing.T) {
	_, err := NewGRPCHealthChecker("")
	assert.Error(t, err)
}
