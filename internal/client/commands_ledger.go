package client

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/models"
)

func (a *App) collections(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("collections"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.DappService.Collections(ctx)
}

func (a *App) myCollections(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("my-collections"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.DappService.MyCollections(ctx)
}

func (a *App) myTokens(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("my-tokens"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.DappService.MyTokens(ctx)
}

func (a *App) collectionInfo(ctx context.Context, args []string) (any, error) {
	rest, err := parseArgs(newFlagSet("collection-info"), args, 1, 1)
	if err != nil {
		return nil, err
	}

	collection, err := parsePrincipal(rest[0])
	if err != nil {
		return nil, err
	}
	return a.services.DappService.CollectionInfo(ctx, collection)
}

func (a *App) ownerOf(ctx context.Context, args []string) (any, error) {
	collection, ids, err := collectionAndTokenIDs("owner-of", args)
	if err != nil {
		return nil, err
	}
	return a.services.DappService.OwnerOf(ctx, collection, ids)
}

func (a *App) tokenMetadata(ctx context.Context, args []string) (any, error) {
	collection, ids, err := collectionAndTokenIDs("token-metadata", args)
	if err != nil {
		return nil, err
	}
	return a.services.DappService.TokenMetadata(ctx, collection, ids)
}

func collectionAndTokenIDs(name string, args []string) (models.Principal, []uint64, error) {
	rest, err := parseArgs(newFlagSet(name), args, 2, -1)
	if err != nil {
		return models.Principal{}, nil, err
	}

	collection, err := parsePrincipal(rest[0])
	if err != nil {
		return models.Principal{}, nil, err
	}
	ids, err := parseTokenIDs(rest[1:])
	if err != nil {
		return models.Principal{}, nil, err
	}
	return collection, ids, nil
}

func (a *App) tokens(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("tokens")
	var page pageFlags
	page.register(fs)

	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return nil, err
	}

	collection, err := parsePrincipal(rest[0])
	if err != nil {
		return nil, err
	}
	return a.services.DappService.Tokens(ctx, collection, page.request())
}

func (a *App) tokensOf(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("tokens-of")
	var page pageFlags
	page.register(fs)

	rest, err := parseArgs(fs, args, 2, 2)
	if err != nil {
		return nil, err
	}

	collection, err := parsePrincipal(rest[0])
	if err != nil {
		return nil, err
	}
	account, err := parseAccount(rest[1])
	if err != nil {
		return nil, err
	}
	return a.services.DappService.TokensOf(ctx, collection, account, page.request())
}

func (a *App) balanceOf(ctx context.Context, args []string) (any, error) {
	rest, err := parseArgs(newFlagSet("balance-of"), args, 2, -1)
	if err != nil {
		return nil, err
	}

	collection, err := parsePrincipal(rest[0])
	if err != nil {
		return nil, err
	}
	accounts, err := parseAccounts(rest[1:])
	if err != nil {
		return nil, err
	}
	return a.services.DappService.BalanceOf(ctx, collection, accounts)
}

// transfer sends every listed token to the same recipient in one batch.
func (a *App) transfer(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("transfer")
	memo := fs.String("memo", "", "Memo attached to every transfer")
	fromSubaccount := fs.String("from-subaccount", "", "Hex subaccount the tokens are sent from")
	timestamp := fs.Bool("timestamp", false, "Set created_at_time for deduplication")

	rest, err := parseArgs(fs, args, 3, -1)
	if err != nil {
		return nil, err
	}

	collection, err := parsePrincipal(rest[0])
	if err != nil {
		return nil, err
	}
	to, err := parseAccount(rest[1])
	if err != nil {
		return nil, err
	}
	ids, err := parseTokenIDs(rest[2:])
	if err != nil {
		return nil, err
	}

	var from []byte
	if *fromSubaccount != "" {
		from, err = hex.DecodeString(*fromSubaccount)
		if err != nil || len(from) != models.SubaccountLength {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, models.ErrInvalidSubaccount)
		}
	}

	var createdAt *uint64
	if *timestamp {
		now := uint64(a.now().UnixNano())
		createdAt = &now
	}

	transfers := make([]models.TransferArg, 0, len(ids))
	for _, id := range ids {
		arg := models.TransferArg{
			FromSubaccount: from,
			To:             to,
			TokenID:        id,
			CreatedAtTime:  createdAt,
		}
		if *memo != "" {
			arg.Memo = []byte(*memo)
		}
		transfers = append(transfers, arg)
	}

	return a.services.DappService.Transfer(ctx, collection, transfers)
}

func (a *App) mintCollection(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("mint-collection")
	var arg models.CollectionArg
	var description, logo, owner optionalString
	var supplyCap, maxQueryBatch, maxUpdateBatch, maxTake, defaultTake, maxMemo optionalUint64
	var atomic optionalBool
	var txWindow, permittedDrift optionalNanos

	fs.StringVar(&arg.Symbol, "symbol", "", "Collection symbol")
	fs.StringVar(&arg.Name, "name", "", "Collection name")
	fs.Var(&description, "description", "Collection description")
	fs.Var(&logo, "logo", "Collection logo")
	fs.Var(&supplyCap, "supply-cap", "Maximum number of tokens")
	fs.Var(&maxQueryBatch, "max-query-batch-size", "Largest query batch")
	fs.Var(&maxUpdateBatch, "max-update-batch-size", "Largest update batch")
	fs.Var(&maxTake, "max-take-value", "Largest page size")
	fs.Var(&defaultTake, "default-take-value", "Page size when none is given")
	fs.Var(&maxMemo, "max-memo-size", "Largest memo in bytes")
	fs.Var(&atomic, "atomic-batch-transfers", "Abort a transfer batch on the first error")
	fs.Var(&txWindow, "tx-window", "Deduplication window, e.g. 24h")
	fs.Var(&permittedDrift, "permitted-drift", "Allowed clock drift, e.g. 2m")
	fs.Var(&owner, "owner", "Owner account, defaults to the caller")

	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return nil, err
	}

	arg.Description = description.value
	arg.Logo = logo.value
	arg.SupplyCap = supplyCap.value
	arg.MaxQueryBatchSize = maxQueryBatch.value
	arg.MaxUpdateBatchSize = maxUpdateBatch.value
	arg.MaxTakeValue = maxTake.value
	arg.DefaultTakeValue = defaultTake.value
	arg.MaxMemoSize = maxMemo.value
	arg.AtomicBatchTransfers = atomic.value
	arg.TxWindowNanos = txWindow.value
	arg.PermittedDriftNanos = permittedDrift.value

	var ownerAccount *models.Account
	if owner.value != nil {
		account, err := parseAccount(*owner.value)
		if err != nil {
			return nil, err
		}
		ownerAccount = &account
	}

	return a.services.FactoryService.MintCollection(ctx, arg, ownerAccount)
}

type pageFlags struct {
	prev optionalUint64
	take optionalUint64
}

func (p *pageFlags) register(fs *flag.FlagSet) {
	fs.Var(&p.prev, "prev", "Return ids after this one")
	fs.Var(&p.take, "take", "Page size")
}

func (p *pageFlags) request() models.PageRequest {
	return models.PageRequest{Prev: p.prev.value, Take: p.take.value}
}
