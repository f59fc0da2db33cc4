package replica

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// Mount registers the canisters backed by svcs. revision selects the
// backend interface.
func (d *Dispatcher) Mount(svcs *service.Services, revision string) error {
	ids := svcs.CanisterIDs
	agents := d.AgentFactory()

	var backend Canister
	switch revision {
	case config.RevisionV1:
		backend = BackendV1Canister(svcs.BackendService, agents, ids.Backend)
	case config.RevisionV2:
		backend = BackendV2Canister(svcs.BackendService, agents, ids.Backend)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRevision, revision)
	}

	d.Register(ids.Factory, KindFactory, FactoryCanister(svcs.FactoryService))
	d.Register(ids.Backend, KindBackend, backend)
	d.RegisterLedgers(LedgerCanister(svcs.LedgerService), func(ctx context.Context, id models.Principal) error {
		_, err := svcs.LedgerService.Settings(ctx, id)
		return err
	})

	d.logger.Info().
		Str("factory", ids.Factory.String()).
		Str("backend", ids.Backend.String()).
		Str("revision", revision).
		Msg("canisters mounted")
	return nil
}
