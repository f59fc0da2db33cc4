package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// dappServiceV2 speaks the variant revision of the backend.
type dappServiceV2 struct {
	backend canister.BackendV2
	factory canister.Factory
	sender  models.Principal
	logger  *logger.Logger
}

// NewDappServiceV2 builds a [DappService] over the variant revision. The
// variant backend has no per-user collection listing, so MyCollections asks
// the factory directly.
func NewDappServiceV2(backend canister.BackendV2, factory canister.Factory, sender models.Principal, logger *logger.Logger) DappService {
	return &dappServiceV2{backend: backend, factory: factory, sender: sender, logger: logger}
}

func (s *dappServiceV2) Revision() string { return config.RevisionV2 }

func (s *dappServiceV2) Whoami(ctx context.Context) (models.Outcome, error) {
	p, err := s.backend.Whoami(ctx)
	return fromValue(p.String(), err)
}

// SubscribeGroup sends the group record. A leader name appends the sender as
// the last member, since the variant record carries no leader field.
func (s *dappServiceV2) SubscribeGroup(ctx context.Context, req models.SubscribeGroupRequest) (models.Outcome, error) {
	members := make([]models.Member, 0, len(req.Members)+1)
	members = append(members, req.Members...)
	if req.LeaderName != "" {
		members = append(members, models.Member{Name: req.LeaderName, InternetIdentity: s.sender})
	}

	group := models.Group{
		GroupName:    req.GroupName,
		GroupMembers: members,
	}
	return fromOperationCode(s.backend.SubscribeGroup(ctx, group))
}

func (s *dappServiceV2) Groups(ctx context.Context) (models.Outcome, error) {
	return fromValue(s.backend.GetAllGroups(ctx))
}

func (s *dappServiceV2) GroupMembers(ctx context.Context, groupID string) (models.Outcome, error) {
	return fromValue(s.backend.GetGroupMembers(ctx, groupID))
}

func (s *dappServiceV2) RemoveGroup(ctx context.Context, groupID string) (models.Outcome, error) {
	return fromOperationCode(s.backend.RemoveGroup(ctx, groupID))
}

func (s *dappServiceV2) RemoveAllGroups(ctx context.Context) (models.Outcome, error) {
	return fromUnit("All groups removed", s.backend.RemoveAllGroups(ctx))
}

func (s *dappServiceV2) CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Outcome, error) {
	if !req.Metadata.IsValid() {
		return models.Outcome{}, ErrInvalidDataProvided
	}
	return fromUnit("Event created", s.backend.CreateEvent(ctx, req.Title, req.Description, req.Metadata))
}

func (s *dappServiceV2) Events(ctx context.Context) (models.Outcome, error) {
	return fromValue(s.backend.GetAllEvents(ctx))
}

func (s *dappServiceV2) RemoveEvent(ctx context.Context, eventID string) (models.Outcome, error) {
	return fromOperationCode(s.backend.RemoveEvent(ctx, eventID))
}

func (s *dappServiceV2) AssignEvent(ctx context.Context, req models.AssignEventRequest) (models.Outcome, error) {
	if req.GroupID == "" && len(req.Members) > 0 {
		return models.Outcome{}, fmt.Errorf("%w: a group id is required, not members", ErrUnsupportedByRevision)
	}
	return fromOperationCode(s.backend.AssignEventToGroup(ctx, req.EventID, req.GroupID))
}

func (s *dappServiceV2) Collections(ctx context.Context) (models.Outcome, error) {
	return fromValue(s.backend.GetUserCollections(ctx))
}

func (s *dappServiceV2) MyCollections(ctx context.Context) (models.Outcome, error) {
	return fromValue(s.factory.GetUserCollections(ctx, s.sender))
}

func (s *dappServiceV2) MyTokens(context.Context) (models.Outcome, error) {
	return models.Outcome{}, fmt.Errorf("%w: %s", ErrUnsupportedByRevision, canister.MethodGetUserTokensCollection)
}

func (s *dappServiceV2) CollectionInfo(ctx context.Context, collection models.Principal) (models.Outcome, error) {
	b := s.backend
	queries := []infoQuery{
		{key: canister.MethodSymbol, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.Symbol(ctx, collection))
		}},
		{key: canister.MethodName, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.Name(ctx, collection))
		}},
		{key: canister.MethodDescription, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.Description(ctx, collection))
		}},
		{key: canister.MethodLogo, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.Logo(ctx, collection))
		}},
		{key: canister.MethodTotalSupply, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.TotalSupply(ctx, collection))
		}},
		{key: canister.MethodSupplyCap, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.SupplyCap(ctx, collection))
		}},
		{key: canister.MethodMaxQueryBatchSize, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.MaxQueryBatchSize(ctx, collection))
		}},
		{key: canister.MethodMaxUpdateBatchSize, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.MaxUpdateBatchSize(ctx, collection))
		}},
		{key: canister.MethodMaxTakeValue, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.MaxTakeValue(ctx, collection))
		}},
		{key: canister.MethodMaxMemoSize, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.MaxMemoSize(ctx, collection))
		}},
		{key: canister.MethodAtomicBatchTransfers, fetch: func(ctx context.Context) (models.Outcome, error) {
			return fromResult(b.AtomicBatchTransfers(ctx, collection))
		}},
	}
	s.logger.Debug().Str("collection", collection.String()).Int("queries", len(queries)).Msg("collecting collection info")
	return collectInfo(ctx, collection, queries)
}

func (s *dappServiceV2) OwnerOf(ctx context.Context, collection models.Principal, ids []uint64) (models.Outcome, error) {
	return fromResult(s.backend.OwnerOf(ctx, collection, ids))
}

func (s *dappServiceV2) Tokens(ctx context.Context, collection models.Principal, page models.PageRequest) (models.Outcome, error) {
	return fromResult(s.backend.Tokens(ctx, collection, page.Prev, page.Take))
}

func (s *dappServiceV2) TokensOf(ctx context.Context, collection models.Principal, account models.Account, page models.PageRequest) (models.Outcome, error) {
	return fromResult(s.backend.TokensOf(ctx, collection, account, page.Prev, page.Take))
}

func (s *dappServiceV2) BalanceOf(ctx context.Context, collection models.Principal, accounts []models.Account) (models.Outcome, error) {
	return fromResult(s.backend.BalanceOf(ctx, collection, accounts))
}

func (s *dappServiceV2) TokenMetadata(ctx context.Context, collection models.Principal, ids []uint64) (models.Outcome, error) {
	return fromResult(s.backend.TokenMetadata(ctx, collection, ids))
}

func (s *dappServiceV2) Transfer(ctx context.Context, collection models.Principal, args []models.TransferArg) (models.Outcome, error) {
	return fromResult(s.backend.Transfer(ctx, collection, args))
}
