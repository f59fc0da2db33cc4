package canister

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type backendV1 struct {
	agent adapter.Agent
	id    models.Principal
}

// NewBackendV1 binds the envelope revision of the backend canister id.
func NewBackendV1(agent adapter.Agent, id models.Principal) BackendV1 {
	return &backendV1{agent: agent, id: id}
}

type envelope[T any] = models.RequestResult[T]

func (b *backendV1) Whoami(ctx context.Context) (models.Principal, error) {
	return query[models.Principal](ctx, b.agent, b.id, MethodWhoami)
}

func (b *backendV1) SubscribeGroup(ctx context.Context, members []models.Member, leaderName, groupName string) (envelope[[]uint64], error) {
	return update[envelope[[]uint64]](ctx, b.agent, b.id, MethodSubscribeGroup, members, leaderName, groupName)
}

func (b *backendV1) CreateEvent(ctx context.Context, title, description string, metadata models.MetadataValue) error {
	return updateUnit(ctx, b.agent, b.id, MethodCreateEvent, title, description, metadata)
}

func (b *backendV1) AssignEventToGroup(ctx context.Context, eventID string, members []models.Member) (envelope[[]uint64], error) {
	return update[envelope[[]uint64]](ctx, b.agent, b.id, MethodAssignEventToGroup, eventID, members)
}

func (b *backendV1) GetAllGroups(ctx context.Context) (envelope[[]models.GroupEntry], error) {
	return query[envelope[[]models.GroupEntry]](ctx, b.agent, b.id, MethodGetAllGroups)
}

func (b *backendV1) GetAllEvents(ctx context.Context) (envelope[[]models.Event], error) {
	return query[envelope[[]models.Event]](ctx, b.agent, b.id, MethodGetAllEvents)
}

func (b *backendV1) GetGroupMembers(ctx context.Context, groupID string) (envelope[[]models.Member], error) {
	return query[envelope[[]models.Member]](ctx, b.agent, b.id, MethodGetGroupMembers, groupID)
}

func (b *backendV1) RemoveGroup(ctx context.Context, groupID string) (envelope[string], error) {
	return update[envelope[string]](ctx, b.agent, b.id, MethodRemoveGroup, groupID)
}

func (b *backendV1) RemoveEvent(ctx context.Context, eventID string) (envelope[string], error) {
	return update[envelope[string]](ctx, b.agent, b.id, MethodRemoveEvent, eventID)
}

func (b *backendV1) RemoveAllGroups(ctx context.Context) error {
	return updateUnit(ctx, b.agent, b.id, MethodRemoveAllGroups)
}

func (b *backendV1) GetAllCollections(ctx context.Context) (envelope[[]models.CollectionEntry], error) {
	return query[envelope[[]models.CollectionEntry]](ctx, b.agent, b.id, MethodGetAllCollections)
}

func (b *backendV1) GetUserCollections(ctx context.Context) (envelope[[]models.Principal], error) {
	return query[envelope[[]models.Principal]](ctx, b.agent, b.id, MethodGetUserCollectionsV1)
}

func (b *backendV1) GetUserTokensCollection(ctx context.Context) (envelope[[]models.TokensCollection], error) {
	return query[envelope[[]models.TokensCollection]](ctx, b.agent, b.id, MethodGetUserTokensCollection)
}

func (b *backendV1) Symbol(ctx context.Context, collection models.Principal) (envelope[string], error) {
	return query[envelope[string]](ctx, b.agent, b.id, MethodProxySymbol, collection)
}

func (b *backendV1) Name(ctx context.Context, collection models.Principal) (envelope[string], error) {
	return query[envelope[string]](ctx, b.agent, b.id, MethodProxyName, collection)
}

func (b *backendV1) Description(ctx context.Context, collection models.Principal) (envelope[*string], error) {
	return query[envelope[*string]](ctx, b.agent, b.id, MethodProxyDescription, collection)
}

func (b *backendV1) Logo(ctx context.Context, collection models.Principal) (envelope[*string], error) {
	return query[envelope[*string]](ctx, b.agent, b.id, MethodProxyLogo, collection)
}

func (b *backendV1) TotalSupply(ctx context.Context, collection models.Principal) (envelope[uint64], error) {
	return query[envelope[uint64]](ctx, b.agent, b.id, MethodProxyTotalSupply, collection)
}

func (b *backendV1) SupplyCap(ctx context.Context, collection models.Principal) (envelope[*uint64], error) {
	return query[envelope[*uint64]](ctx, b.agent, b.id, MethodProxySupplyCap, collection)
}

func (b *backendV1) MaxQueryBatchSize(ctx context.Context, collection models.Principal) (envelope[*uint64], error) {
	return query[envelope[*uint64]](ctx, b.agent, b.id, MethodProxyMaxQueryBatchSize, collection)
}

func (b *backendV1) MaxUpdateBatchSize(ctx context.Context, collection models.Principal) (envelope[*uint64], error) {
	return query[envelope[*uint64]](ctx, b.agent, b.id, MethodProxyMaxUpdateBatchSize, collection)
}

func (b *backendV1) MaxTakeValue(ctx context.Context, collection models.Principal) (envelope[*uint64], error) {
	return query[envelope[*uint64]](ctx, b.agent, b.id, MethodProxyMaxTakeValue, collection)
}

func (b *backendV1) MaxMemoSize(ctx context.Context, collection models.Principal) (envelope[*uint64], error) {
	return query[envelope[*uint64]](ctx, b.agent, b.id, MethodProxyMaxMemoSize, collection)
}

func (b *backendV1) AtomicBatchTransfers(ctx context.Context, collection models.Principal) (envelope[*bool], error) {
	return query[envelope[*bool]](ctx, b.agent, b.id, MethodAtomicBatchTransfers, collection)
}

func (b *backendV1) OwnerOf(ctx context.Context, collection models.Principal, ids []uint64) (envelope[[]*models.Account], error) {
	return query[envelope[[]*models.Account]](ctx, b.agent, b.id, MethodOwnerOf, ids, collection)
}

func (b *backendV1) Tokens(ctx context.Context, collection models.Principal, prev, take *uint64) (envelope[[]uint64], error) {
	return query[envelope[[]uint64]](ctx, b.agent, b.id, MethodTokens, prev, take, collection)
}

func (b *backendV1) TokenMetadata(ctx context.Context, collection models.Principal, ids []uint64) (envelope[[]*models.TokenMetadata], error) {
	return query[envelope[[]*models.TokenMetadata]](ctx, b.agent, b.id, MethodProxyTokenMetadata, ids, collection)
}

func (b *backendV1) BalanceOf(ctx context.Context, collection models.Principal, accounts []models.Account) (envelope[[]uint64], error) {
	return query[envelope[[]uint64]](ctx, b.agent, b.id, MethodBalanceOf, accounts, collection)
}

func (b *backendV1) TokensOf(ctx context.Context, collection models.Principal, account models.Account, prev, take *uint64) (envelope[[]uint64], error) {
	return query[envelope[[]uint64]](ctx, b.agent, b.id, MethodTokensOf, account, prev, take, collection)
}

func (b *backendV1) Transfer(ctx context.Context, collection models.Principal, args []models.TransferArg, caller models.Principal) (envelope[[]*models.TransferResult], error) {
	return update[envelope[[]*models.TransferResult]](ctx, b.agent, b.id, MethodTransfer, collection, args, caller)
}
