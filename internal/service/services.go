package service

import (
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/internal/validators"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// AgentFactory returns an agent whose calls are sent as sender. Canister
// services use it for inter-canister calls.
type AgentFactory func(sender models.Principal) adapter.Agent

// CanisterIDs are the fixed canisters hosted by the replica.
type CanisterIDs struct {
	Backend          models.Principal
	Factory          models.Principal
	InternetIdentity models.Principal
}

// Services bundles the replica-side services.
type Services struct {
	CanisterIDs CanisterIDs

	IdentityService IdentityService
	LedgerService   LedgerService
	FactoryService  FactoryService
	BackendService  BackendService
	AppInfoService  AppInfoService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, build models.AppBuildInfo, agents AgentFactory, logger *logger.Logger) (*Services, error) {
	backendID, factoryID, iiID, err := cfg.Canisters.CanisterIDs()
	if err != nil {
		return nil, fmt.Errorf("parse canister ids: %w", err)
	}

	appInfo, err := NewAppInfoService(build, cfg.App.Revision, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	ledgersAs := func(sender models.Principal) LedgerResolver {
		agent := agents(sender)
		return func(id models.Principal) canister.Ledger {
			return canister.NewLedger(agent, id)
		}
	}

	return &Services{
		CanisterIDs: CanisterIDs{Backend: backendID, Factory: factoryID, InternetIdentity: iiID},

		IdentityService: NewIdentityService(cfg.App, validator, logger),
		LedgerService:   NewLedgerService(repos.Collections, repos.Ledger, validator, factoryID, logger),
		FactoryService:  NewFactoryService(repos.Collections, repos.Counters, ledgersAs(factoryID), validator, logger),
		BackendService: NewBackendService(BackendDeps{
			Groups:    repos.Groups,
			Events:    repos.Events,
			Tokens:    repos.Ledger,
			Counters:  repos.Counters,
			Factory:   canister.NewFactory(agents(backendID), factoryID),
			Ledgers:   ledgersAs(backendID),
			Self:      backendID,
			IDs:       utils.NewUUIDGenerator(),
			Validator: validator,
		}, logger),
		AppInfoService: appInfo,
	}, nil
}
