package service

import (
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// ClientServices groups the services the CLI dispatches to.
type ClientServices struct {
	DappService    DappService
	FactoryService ClientFactoryService
	ReplicaService ClientReplicaService
}

// NewClientServices binds the backend of the configured revision and the
// factory over agent. health may be nil.
func NewClientServices(cfg *config.ClientConfig, agent adapter.Agent, health adapter.HealthChecker, logger *logger.Logger) (*ClientServices, error) {
	factory := canister.NewFactory(agent, cfg.Canisters.Factory)
	sender := agent.Sender()

	dapp, err := NewDappService(cfg.App.Revision, agent, cfg.Canisters.Backend, factory, sender, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		DappService:    dapp,
		FactoryService: NewClientFactoryService(factory, sender, logger),
		ReplicaService: NewClientReplicaService(agent, health),
	}, nil
}

// NewDappService selects the [DappService] implementation for revision.
func NewDappService(revision string, agent adapter.Agent, backendID models.Principal, factory canister.Factory, sender models.Principal, logger *logger.Logger) (DappService, error) {
	switch revision {
	case config.RevisionV1:
		return NewDappServiceV1(canister.NewBackendV1(agent, backendID), sender, logger), nil
	case config.RevisionV2:
		return NewDappServiceV2(canister.NewBackendV2(agent, backendID), factory, sender, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown revision %q", ErrUnsupportedByRevision, revision)
	}
}
