package canister

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type factory struct {
	agent adapter.Agent
	id    models.Principal
}

// NewFactory binds the factory canister id.
func NewFactory(agent adapter.Agent, id models.Principal) Factory {
	return &factory{agent: agent, id: id}
}

func (f *factory) MintCollection(ctx context.Context, arg models.CollectionArg, owner models.Account) (models.Result[models.Principal, string], error) {
	return update[models.Result[models.Principal, string]](ctx, f.agent, f.id, MethodMintCollection, arg, owner)
}

func (f *factory) ShowCollections(ctx context.Context) ([]models.CollectionEntry, error) {
	return query[[]models.CollectionEntry](ctx, f.agent, f.id, MethodShowCollections)
}

func (f *factory) GetUserCollections(ctx context.Context, owner models.Principal) ([]models.Principal, error) {
	return query[[]models.Principal](ctx, f.agent, f.id, MethodGetUserCollections, owner)
}

func (f *factory) UpdateMintingAuthority(ctx context.Context, collection, owner models.Principal) (bool, error) {
	return update[bool](ctx, f.agent, f.id, MethodUpdateMintingAuthority, collection, owner)
}

func (f *factory) CheckCollectionOwnership(ctx context.Context, collection, owner models.Principal) (bool, error) {
	return query[bool](ctx, f.agent, f.id, MethodCheckCollectionOwnership, collection, owner)
}

func (f *factory) Whoami(ctx context.Context, caller models.Principal) (string, error) {
	return query[string](ctx, f.agent, f.id, MethodWhoami, caller)
}
