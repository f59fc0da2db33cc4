package replica

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// LedgerCanister builds the ICRC-7 method table shared by every collection.
// The collection is the canister the call is addressed to.
func LedgerCanister(ledger service.LedgerService) Canister {
	setting := func(get func(models.CollectionSettings) any) Method {
		return query(func(ctx context.Context, call *Call) ([]any, error) {
			settings, err := ledger.Settings(ctx, call.Canister)
			if err != nil {
				return nil, err
			}
			return reply(get(settings)), nil
		})
	}

	return Canister{
		canister.MethodSymbol:      setting(func(s models.CollectionSettings) any { return s.Symbol }),
		canister.MethodName:        setting(func(s models.CollectionSettings) any { return s.Name }),
		canister.MethodDescription: setting(func(s models.CollectionSettings) any { return s.Description }),
		canister.MethodLogo:        setting(func(s models.CollectionSettings) any { return s.Logo }),
		canister.MethodTotalSupply: setting(func(s models.CollectionSettings) any { return s.TotalSupply }),
		canister.MethodSupplyCap:   setting(func(s models.CollectionSettings) any { return s.SupplyCap }),

		canister.MethodMaxQueryBatchSize:  setting(func(s models.CollectionSettings) any { return &s.MaxQueryBatchSize }),
		canister.MethodMaxUpdateBatchSize: setting(func(s models.CollectionSettings) any { return &s.MaxUpdateBatchSize }),
		canister.MethodDefaultTakeValue:   setting(func(s models.CollectionSettings) any { return &s.DefaultTakeValue }),
		canister.MethodMaxTakeValue:       setting(func(s models.CollectionSettings) any { return &s.MaxTakeValue }),
		canister.MethodMaxMemoSize:        setting(func(s models.CollectionSettings) any { return &s.MaxMemoSize }),
		canister.MethodAtomicBatchTransfers: setting(func(s models.CollectionSettings) any {
			return &s.AtomicBatchTransfers
		}),
		canister.MethodTxWindow: setting(func(s models.CollectionSettings) any {
			nanos := uint64(s.TxWindow)
			return &nanos
		}),
		canister.MethodPermittedDrift: setting(func(s models.CollectionSettings) any {
			nanos := uint64(s.PermittedDrift)
			return &nanos
		}),
		canister.MethodMintingAuthority: setting(func(s models.CollectionSettings) any { return s.MintingAuthority }),

		canister.MethodCollectionMetadata: query(func(ctx context.Context, call *Call) ([]any, error) {
			entries, err := ledger.CollectionMetadata(ctx, call.Canister)
			if err != nil {
				return nil, err
			}
			return reply(entries), nil
		}),

		canister.MethodTokenMetadata: query(func(ctx context.Context, call *Call) ([]any, error) {
			var ids []uint64
			if err := call.Args(&ids); err != nil {
				return nil, err
			}
			metadata, err := ledger.TokenMetadata(ctx, call.Canister, ids)
			if err != nil {
				return nil, err
			}
			return reply(metadata), nil
		}),

		canister.MethodOwnerOf: query(func(ctx context.Context, call *Call) ([]any, error) {
			var ids []uint64
			if err := call.Args(&ids); err != nil {
				return nil, err
			}
			owners, err := ledger.OwnerOf(ctx, call.Canister, ids)
			if err != nil {
				return nil, err
			}
			return reply(owners), nil
		}),

		canister.MethodBalanceOf: query(func(ctx context.Context, call *Call) ([]any, error) {
			var accounts []models.Account
			if err := call.Args(&accounts); err != nil {
				return nil, err
			}
			balances, err := ledger.BalanceOf(ctx, call.Canister, accounts)
			if err != nil {
				return nil, err
			}
			return reply(balances), nil
		}),

		canister.MethodTokens: query(func(ctx context.Context, call *Call) ([]any, error) {
			var prev, take *uint64
			if err := call.Args(&prev, &take); err != nil {
				return nil, err
			}
			ids, err := ledger.Tokens(ctx, call.Canister, prev, take)
			if err != nil {
				return nil, err
			}
			return reply(ids), nil
		}),

		canister.MethodTokensOf: query(func(ctx context.Context, call *Call) ([]any, error) {
			var (
				account    models.Account
				prev, take *uint64
			)
			if err := call.Args(&account, &prev, &take); err != nil {
				return nil, err
			}
			ids, err := ledger.TokensOf(ctx, call.Canister, account, prev, take)
			if err != nil {
				return nil, err
			}
			return reply(ids), nil
		}),

		canister.MethodMint: update(func(ctx context.Context, call *Call) ([]any, error) {
			var arg models.MintArg
			if err := call.Args(&arg); err != nil {
				return nil, err
			}
			result, err := ledger.Mint(ctx, call.Canister, call.Caller, arg)
			if err != nil {
				return nil, err
			}
			return reply(result), nil
		}),

		canister.MethodTransfer: update(func(ctx context.Context, call *Call) ([]any, error) {
			var args []models.TransferArg
			if err := call.Args(&args); err != nil {
				return nil, err
			}
			results, err := ledger.Transfer(ctx, call.Canister, call.Caller, args)
			if err != nil {
				return nil, err
			}
			return reply(results), nil
		}),

		canister.MethodSetMintingAuthority: update(func(ctx context.Context, call *Call) ([]any, error) {
			var authority models.Account
			if err := call.Args(&authority); err != nil {
				return nil, err
			}
			ok, err := ledger.SetMintingAuthority(ctx, call.Canister, call.Caller, authority)
			if err != nil {
				return nil, err
			}
			return reply(ok), nil
		}),
	}
}
