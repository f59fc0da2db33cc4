package canister

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type backendV2 struct {
	agent adapter.Agent
	id    models.Principal
}

// NewBackendV2 binds the variant revision of the backend canister id.
func NewBackendV2(agent adapter.Agent, id models.Principal) BackendV2 {
	return &backendV2{agent: agent, id: id}
}

type proxied[T any] = models.Result[T, models.OperationCode]

func (b *backendV2) Whoami(ctx context.Context) (models.Principal, error) {
	return query[models.Principal](ctx, b.agent, b.id, MethodWhoami)
}

func (b *backendV2) SubscribeGroup(ctx context.Context, group models.Group) (models.OperationCode, error) {
	return update[models.OperationCode](ctx, b.agent, b.id, MethodSubscribeGroup, group)
}

func (b *backendV2) CreateEvent(ctx context.Context, title, description string, metadata models.MetadataValue) error {
	return updateUnit(ctx, b.agent, b.id, MethodCreateEvent, title, description, metadata)
}

func (b *backendV2) AssignEventToGroup(ctx context.Context, eventID, groupID string) (models.OperationCode, error) {
	return update[models.OperationCode](ctx, b.agent, b.id, MethodAssignEventToGroup, eventID, groupID)
}

func (b *backendV2) GetAllGroups(ctx context.Context) ([]models.GroupEntry, error) {
	return query[[]models.GroupEntry](ctx, b.agent, b.id, MethodGetAllGroups)
}

func (b *backendV2) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return query[[]models.Event](ctx, b.agent, b.id, MethodGetAllEvents)
}

func (b *backendV2) GetGroupMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	return query[[]models.Member](ctx, b.agent, b.id, MethodGetGroupMembers, groupID)
}

func (b *backendV2) RemoveGroup(ctx context.Context, groupID string) (models.OperationCode, error) {
	return update[models.OperationCode](ctx, b.agent, b.id, MethodRemoveGroup, groupID)
}

func (b *backendV2) RemoveEvent(ctx context.Context, eventID string) (models.OperationCode, error) {
	return update[models.OperationCode](ctx, b.agent, b.id, MethodRemoveEvent, eventID)
}

func (b *backendV2) RemoveAllGroups(ctx context.Context) error {
	return updateUnit(ctx, b.agent, b.id, MethodRemoveAllGroups)
}

func (b *backendV2) GetUserCollections(ctx context.Context) ([]models.CollectionEntry, error) {
	return update[[]models.CollectionEntry](ctx, b.agent, b.id, MethodGetUserCollections)
}

func (b *backendV2) Symbol(ctx context.Context, collection models.Principal) (proxied[string], error) {
	return query[proxied[string]](ctx, b.agent, b.id, MethodProxySymbol, collection)
}

func (b *backendV2) Name(ctx context.Context, collection models.Principal) (proxied[string], error) {
	return query[proxied[string]](ctx, b.agent, b.id, MethodProxyName, collection)
}

func (b *backendV2) Description(ctx context.Context, collection models.Principal) (proxied[*string], error) {
	return query[proxied[*string]](ctx, b.agent, b.id, MethodProxyDescription, collection)
}

func (b *backendV2) Logo(ctx context.Context, collection models.Principal) (proxied[*string], error) {
	return query[proxied[*string]](ctx, b.agent, b.id, MethodProxyLogo, collection)
}

func (b *backendV2) TotalSupply(ctx context.Context, collection models.Principal) (proxied[uint64], error) {
	return query[proxied[uint64]](ctx, b.agent, b.id, MethodProxyTotalSupply, collection)
}

func (b *backendV2) SupplyCap(ctx context.Context, collection models.Principal) (proxied[*uint64], error) {
	return query[proxied[*uint64]](ctx, b.agent, b.id, MethodProxySupplyCap, collection)
}

func (b *backendV2) MaxQueryBatchSize(ctx context.Context, collection models.Principal) (proxied[*uint64], error) {
	return query[proxied[*uint64]](ctx, b.agent, b.id, MethodProxyMaxQueryBatchSize, collection)
}

func (b *backendV2) MaxUpdateBatchSize(ctx context.Context, collection models.Principal) (proxied[*uint64], error) {
	return query[proxied[*uint64]](ctx, b.agent, b.id, MethodProxyMaxUpdateBatchSize, collection)
}

func (b *backendV2) MaxTakeValue(ctx context.Context, collection models.Principal) (proxied[*uint64], error) {
	return query[proxied[*uint64]](ctx, b.agent, b.id, MethodProxyMaxTakeValue, collection)
}

func (b *backendV2) MaxMemoSize(ctx context.Context, collection models.Principal) (proxied[*uint64], error) {
	return query[proxied[*uint64]](ctx, b.agent, b.id, MethodProxyMaxMemoSize, collection)
}

func (b *backendV2) AtomicBatchTransfers(ctx context.Context, collection models.Principal) (proxied[*bool], error) {
	return query[proxied[*bool]](ctx, b.agent, b.id, MethodAtomicBatchTransfers, collection)
}

func (b *backendV2) OwnerOf(ctx context.Context, collection models.Principal, ids []uint64) (proxied[[]*models.Account], error) {
	return query[proxied[[]*models.Account]](ctx, b.agent, b.id, MethodOwnerOf, ids, collection)
}

func (b *backendV2) Tokens(ctx context.Context, collection models.Principal, prev, take *uint64) (proxied[[]uint64], error) {
	return query[proxied[[]uint64]](ctx, b.agent, b.id, MethodTokens, prev, take, collection)
}

func (b *backendV2) TokenMetadata(ctx context.Context, collection models.Principal, ids []uint64) (proxied[[]*models.TokenMetadata], error) {
	return query[proxied[[]*models.TokenMetadata]](ctx, b.agent, b.id, MethodProxyTokenMetadata, ids, collection)
}

func (b *backendV2) BalanceOf(ctx context.Context, collection models.Principal, accounts []models.Account) (proxied[[]uint64], error) {
	return query[proxied[[]uint64]](ctx, b.agent, b.id, MethodBalanceOf, accounts, collection)
}

func (b *backendV2) TokensOf(ctx context.Context, collection models.Principal, account models.Account, prev, take *uint64) (proxied[[]uint64], error) {
	return query[proxied[[]uint64]](ctx, b.agent, b.id, MethodTokensOf, account, prev, take, collection)
}

func (b *backendV2) Transfer(ctx context.Context, collection models.Principal, args []models.TransferArg) (proxied[[]*models.TransferResult], error) {
	return update[proxied[[]*models.TransferResult]](ctx, b.agent, b.id, MethodTransfer, collection, args)
}
