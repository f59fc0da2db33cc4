package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type clientReplicaService struct {
	agent  adapter.Agent
	health adapter.HealthChecker
}

// NewClientReplicaService constructs a [ClientReplicaService]. health may be
// nil when no gRPC address is configured.
func NewClientReplicaService(agent adapter.Agent, health adapter.HealthChecker) ClientReplicaService {
	return &clientReplicaService{agent: agent, health: health}
}

func (s *clientReplicaService) Status(ctx context.Context) (models.Outcome, error) {
	status, err := s.agent.Status(ctx)
	if err != nil {
		return models.Outcome{}, mapAgentError(err)
	}
	return models.Outcome{Code: models.StatusOK, Message: status.ReplicaHealthStatus, Body: status}, nil
}

func (s *clientReplicaService) Health(ctx context.Context, service string) (models.Outcome, error) {
	if s.health == nil {
		return models.Outcome{}, fmt.Errorf("%w: no health endpoint configured", ErrReplicaUnavailable)
	}

	status, err := s.health.Check(ctx, service)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("%w: %w", ErrReplicaUnavailable, err)
	}

	if status != "SERVING" {
		return models.Outcome{Code: models.StatusServiceUnavailable, Message: status}, nil
	}
	return models.Outcome{Code: models.StatusOK, Message: status}, nil
}
