package adapter

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type grpcHealthChecker struct {
	conn   *grpc.ClientConn
	client healthpb.HealthClient
}

// NewGRPCHealthChecker connects to the replica health service at address.
// The connection is established lazily on the first check.
func NewGRPCHealthChecker(address string) (HealthChecker, error) {
	if address == "" {
		return nil, fmt.Errorf("empty grpc address")
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", address, err)
	}

	return &grpcHealthChecker{conn: conn, client: healthpb.NewHealthClient(conn)}, nil
}

// Check returns the serving status of service ("" for the whole replica).
func (g *grpcHealthChecker) Check(ctx context.Context, service string) (string, error) {
	resp, err := g.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return "", fmt.Errorf("health check: %w", err)
	}
	return resp.GetStatus().String(), nil
}

func (g *grpcHealthChecker) Close() error {
	return g.conn.Close()
}
