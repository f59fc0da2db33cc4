// Package grpc implements the replica's gRPC surface: the standard health
// service, reporting the replica and each hosted canister kind.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
)

// Health service names. The empty name reports the replica as a whole.
const (
	ServiceReplica  = ""
	ServiceFactory  = "icrc7.factory"
	ServiceBackend  = "icrc7.backend"
	ServiceIdentity = "icrc7.identity"
)

var healthServices = []string{ServiceReplica, ServiceFactory, ServiceBackend, ServiceIdentity}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server

	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs a Handler. Every service starts as NOT_SERVING
// until [Handler.Refresh] reports the replica healthy.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health:   health.NewServer(),
		services: services,
		logger:   logger,
	}
	for _, name := range healthServices {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh asks the app info service for the replica status and publishes it
// for every service name.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services.AppInfoService.Status(ctx).ReplicaHealthStatus == service.ReplicaHealthy {
		status = healthpb.HealthCheckResponse_SERVING
	}

	for _, name := range healthServices {
		h.health.SetServingStatus(name, status)
	}
	h.logger.Info().Str("status", status.String()).Msg("health status published")
	return status
}

// Shutdown flips every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
