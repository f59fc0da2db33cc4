package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// dappServiceV1 speaks the envelope revision of the backend.
type dappServiceV1 struct {
	backend canister.BackendV1
	sender  models.Principal
	logger  *logger.Logger
}

// NewDappServiceV1 builds a [DappService] over the envelope revision. sender
// is forwarded as the caller argument of proxied transfers.
func NewDappServiceV1(backend canister.BackendV1, sender models.Principal, logger *logger.Logger) DappService {
	return &dappServiceV1{backend: backend, sender: sender, logger: logger}
}

func (s *dappServiceV1) Revision() string { return config.RevisionV1 }

func (s *dappServiceV1) Whoami(ctx context.Context) (models.Outcome, error) {
	p, err := s.backend.Whoami(ctx)
	return fromValue(p.String(), err)
}

func (s *dappServiceV1) SubscribeGroup(ctx context.Context, req models.SubscribeGroupRequest) (models.Outcome, error) {
	return fromEnvelope(s.backend.SubscribeGroup(ctx, req.Members, req.LeaderName, req.GroupName))
}

func (s *dappServiceV1) Groups(ctx context.Context) (models.Outcome, error) {
	return fromEnvelope(s.backend.GetAllGroups(ctx))
}

func (s *dappServiceV1) GroupMembers(ctx context.Context, groupID string) (models.Outcome, error) {
	return fromEnvelope(s.backend.GetGroupMembers(ctx, groupID))
}

func (s *dappServiceV1) RemoveGroup(ctx context.Context, groupID string) (models.Outcome, error) {
	return fromEnvelope(s.backend.RemoveGroup(ctx, groupID))
}

func (s *dappServiceV1) RemoveAllGroups(ctx context.Context) (models.Outcome, error) {
	return fromUnit("All groups removed", s.backend.RemoveAllGroups(ctx))
}

func (s *dappServiceV1) CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Outcome, error) {
	if !req.Metadata.IsValid() {
		return models.Outcome{}, ErrInvalidDataProvided
	}
	return fromUnit("Event created", s.backend.CreateEvent(ctx, req.Title, req.Description, req.Metadata))
}

func (s *dappServiceV1) Events(ctx context.Context) (models.Outcome, error) {
	return fromEnvelope(s.backend.GetAllEvents(ctx))
}

func (s *dappServiceV1) RemoveEvent(ctx context.Context, eventID string) (models.Outcome, error) {
	return fromEnvelope(s.backend.RemoveEvent(ctx, eventID))
}

func (s *dappServiceV1) AssignEvent(ctx context.Context, req models.AssignEventRequest) (models.Outcome, error) {
	if len(req.Members) == 0 && req.GroupID != "" {
		return models.Outcome{}, fmt.Errorf("%w: members are required, not a group id", ErrUnsupportedByRevision)
	}
	return fromEnvelope(s.backend.AssignEventToGroup(ctx, req.EventID, req.Members))
}

func (s *dappServiceV1) Collections(ctx context.Context) (models.Outcome, error) {
	return fromEnvelope(s.backend.GetAllCollections(ctx))
}

func (s *dappServiceV1) MyCollections(ctx context.Context) (models.Outcome, error) {
	return fromEnvelope(s.backend.GetUserCollections(ctx))
}

func (s *dappServiceV1) MyTokens(ctx context.Context) (models.Outcome, error) {
	return fromEnvelope(s.backend.GetUserTokensCollection(ctx))
}

func (s *dappServiceV1) CollectionInfo(ctx context.Context, collection models.Principal) (models.Outcome, error) {
	b := s.backend
	queries := []infoQuery{
		{key: canister.MethodSymbol, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.Symbol(ctx, collection))
		}},
		{key: canister.MethodName, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.Name(ctx, collection))
		}},
		{key: canister.MethodDescription, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.Description(ctx, collection))
		}},
		{key: canister.MethodLogo, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.Logo(ctx, collection))
		}},
		{key: canister.MethodTotalSupply, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.TotalSupply(ctx, collection))
		}},
		{key: canister.MethodSupplyCap, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.SupplyCap(ctx, collection))
		}},
		{key: canister.MethodMaxQueryBatchSize, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.MaxQueryBatchSize(ctx, collection))
		}},
		{key: canister.MethodMaxUpdateBatchSize, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.MaxUpdateBatchSize(ctx, collection))
		}},
		{key: canister.MethodMaxTakeValue, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.MaxTakeValue(ctx, collection))
		}},
		{key: canister.MethodMaxMemoSize, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.MaxMemoSize(ctx, collection))
		}},
		{key: canister.MethodAtomicBatchTransfers, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromEnvelope(b.AtomicBatchTransfers(ctx, collection))
		}},
	}
	s.logger.Debug().Str("collection", collection.String()).Int("queries", len(queries)).Msg("collecting collection info")
	return collectInfo(ctx, collection, queries)
}

func (s *dappServiceV1) OwnerOf(ctx context.Context, collection models.Principal, ids []uint64) (models.Outcome, error) {
	return fromEnvelope(s.backend.OwnerOf(ctx, collection, ids))
}

func (s *dappServiceV1) Tokens(ctx context.Context, collection models.Principal, page models.PageRequest) (models.Outcome, error) {
	return fromEnvelope(s.backend.Tokens(ctx, collection, page.Prev, page.Take))
}

func (s *dappServiceV1) TokensOf(ctx context.Context, collection models.Principal, account models.Account, page models.PageRequest) (models.Outcome, error) {
	return fromEnvelope(s.backend.TokensOf(ctx, collection, account, page.Prev, page.Take))
}

func (s *dappServiceV1) BalanceOf(ctx context.Context, collection models.Principal, accounts []models.Account) (models.Outcome, error) {
	return fromEnvelope(s.backend.BalanceOf(ctx, collection, accounts))
}

func (s *dappServiceV1) TokenMetadata(ctx context.Context, collection models.Principal, ids []uint64) (models.Outcome, error) {
	return fromEnvelope(s.backend.TokenMetadata(ctx, collection, ids))
}

func (s *dappServiceV1) Transfer(ctx context.Context, collection models.Principal, args []models.TransferArg) (models.Outcome, error) {
	return fromEnvelope(s.backend.Transfer(ctx, collection, args, s.sender))
}
