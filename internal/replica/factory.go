package replica

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// FactoryCanister builds the method table of the collection factory. Every
// method rejects anonymous callers.
func FactoryCanister(factory service.FactoryService) Canister {
	return guarded(Canister{
		canister.MethodMintCollection: update(func(ctx context.Context, call *Call) ([]any, error) {
			var (
				arg   models.CollectionArg
				owner models.Account
			)
			if err := call.Args(&arg, &owner); err != nil {
				return nil, err
			}
			result, err := factory.MintCollection(ctx, call.Caller, arg, owner)
			if err != nil {
				return nil, err
			}
			return reply(result), nil
		}),

		canister.MethodShowCollections: query(func(ctx context.Context, call *Call) ([]any, error) {
			entries, err := factory.ShowCollections(ctx)
			if err != nil {
				return nil, err
			}
			return reply(entries), nil
		}),

		canister.MethodGetUserCollections: query(func(ctx context.Context, call *Call) ([]any, error) {
			var owner models.Principal
			if err := call.Args(&owner); err != nil {
				return nil, err
			}
			collections, err := factory.GetUserCollections(ctx, owner)
			if err != nil {
				return nil, err
			}
			return reply(collections), nil
		}),

		// Only the collection owner may hand the minting authority over.
		canister.MethodUpdateMintingAuthority: update(func(ctx context.Context, call *Call) ([]any, error) {
			var collection, owner models.Principal
			if err := call.Args(&collection, &owner); err != nil {
				return nil, err
			}
			owns, err := factory.CheckCollectionOwnership(ctx, collection, call.Caller)
			if err != nil {
				return nil, err
			}
			if !owns {
				return nil, service.ErrNotCollectionOwner
			}
			ok, err := factory.UpdateMintingAuthority(ctx, collection, owner)
			if err != nil {
				return nil, err
			}
			return reply(ok), nil
		}),

		canister.MethodCheckCollectionOwnership: query(func(ctx context.Context, call *Call) ([]any, error) {
			var collection, owner models.Principal
			if err := call.Args(&collection, &owner); err != nil {
				return nil, err
			}
			owns, err := factory.CheckCollectionOwnership(ctx, collection, owner)
			if err != nil {
				return nil, err
			}
			return reply(owns), nil
		}),

		canister.MethodWhoami: query(func(ctx context.Context, call *Call) ([]any, error) {
			var principal models.Principal
			if err := call.Args(&principal); err != nil {
				return nil, err
			}
			return reply(principal.String()), nil
		}),
	})
}
