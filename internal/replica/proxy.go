package replica

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// ledgerProxy decodes the arguments of a backend proxy method and performs
// the ledger call. Decoding failures wrap ErrInvalidArgument; any other
// error is a failed ledger call.
type ledgerProxy[T any] func(ctx context.Context, call *Call) (models.Principal, T, error)

// proxies builds ledger bindings for the backend proxy methods.
type proxies struct {
	agents service.AgentFactory
	self   models.Principal
}

// ledger binds collection with calls sent as sender.
func (p proxies) ledger(sender, collection models.Principal) canister.Ledger {
	return canister.NewLedger(p.agents(sender), collection)
}

// canisterWhoami asks the target canister who the backend is. The backend
// answers for itself without re-entering its own lock.
func canisterWhoami(p proxies) Handler {
	return func(ctx context.Context, call *Call) ([]any, error) {
		var target models.Principal
		if err := call.Args(&target); err != nil {
			return nil, err
		}
		if target == p.self {
			return reply(p.self.String()), nil
		}

		var who string
		if err := p.agents(p.self).Query(ctx, target, canister.MethodWhoami, nil, &who); err != nil {
			return nil, fmt.Errorf("whoami on %s: %w", target, err)
		}
		return reply(who), nil
	}
}

// settingProxy forwards a parameterless ledger query. The collection is the
// only argument.
func settingProxy[T any](p proxies, get func(canister.Ledger, context.Context) (T, error)) ledgerProxy[T] {
	return func(ctx context.Context, call *Call) (models.Principal, T, error) {
		var (
			collection models.Principal
			zero       T
		)
		if err := call.Args(&collection); err != nil {
			return collection, zero, err
		}
		value, err := get(p.ledger(p.self, collection), ctx)
		return collection, value, err
	}
}

func ownerOfProxy(p proxies) ledgerProxy[[]*models.Account] {
	return func(ctx context.Context, call *Call) (models.Principal, []*models.Account, error) {
		var (
			ids        []uint64
			collection models.Principal
		)
		if err := call.Args(&ids, &collection); err != nil {
			return collection, nil, err
		}
		owners, err := p.ledger(p.self, collection).OwnerOf(ctx, ids)
		return collection, owners, err
	}
}

func tokenMetadataProxy(p proxies) ledgerProxy[[]*models.TokenMetadata] {
	return func(ctx context.Context, call *Call) (models.Principal, []*models.TokenMetadata, error) {
		var (
			ids        []uint64
			collection models.Principal
		)
		if err := call.Args(&ids, &collection); err != nil {
			return collection, nil, err
		}
		metadata, err := p.ledger(p.self, collection).TokenMetadata(ctx, ids)
		return collection, metadata, err
	}
}

func balanceOfProxy(p proxies) ledgerProxy[[]uint64] {
	return func(ctx context.Context, call *Call) (models.Principal, []uint64, error) {
		var (
			accounts   []models.Account
			collection models.Principal
		)
		if err := call.Args(&accounts, &collection); err != nil {
			return collection, nil, err
		}
		balances, err := p.ledger(p.self, collection).BalanceOf(ctx, accounts)
		return collection, balances, err
	}
}

func tokensProxy(p proxies) ledgerProxy[[]uint64] {
	return func(ctx context.Context, call *Call) (models.Principal, []uint64, error) {
		var (
			prev, take *uint64
			collection models.Principal
		)
		if err := call.Args(&prev, &take, &collection); err != nil {
			return collection, nil, err
		}
		ids, err := p.ledger(p.self, collection).Tokens(ctx, prev, take)
		return collection, ids, err
	}
}

func tokensOfProxy(p proxies) ledgerProxy[[]uint64] {
	return func(ctx context.Context, call *Call) (models.Principal, []uint64, error) {
		var (
			account    models.Account
			prev, take *uint64
			collection models.Principal
		)
		if err := call.Args(&account, &prev, &take, &collection); err != nil {
			return collection, nil, err
		}
		ids, err := p.ledger(p.self, collection).TokensOf(ctx, account, prev, take)
		return collection, ids, err
	}
}

// transferProxy forwards a transfer batch on behalf of the message caller,
// so the ledger checks ownership against the caller and not the backend.
// The envelope revision also names the caller as the last argument; a
// mismatch with the authenticated caller is logged and ignored.
func transferProxy(p proxies) ledgerProxy[[]*models.TransferResult] {
	return func(ctx context.Context, call *Call) (models.Principal, []*models.TransferResult, error) {
		var (
			collection models.Principal
			args       []models.TransferArg
			claimed    models.Principal
		)
		if err := call.Args(&collection, &args, &claimed); err != nil {
			return collection, nil, err
		}
		if claimed != (models.Principal{}) && claimed != call.Caller {
			logger.FromContext(ctx).Warn().
				Str("caller", call.Caller.String()).
				Str("claimed", claimed.String()).
				Msg("transfer caller argument ignored")
		}
		results, err := p.ledger(call.Caller, collection).Transfer(ctx, args)
		return collection, results, err
	}
}

// failedProxy reports whether err is a ledger failure rather than a bad
// argument tuple, and logs it.
func failedProxy(ctx context.Context, call *Call, collection models.Principal, err error) (string, bool) {
	if errors.Is(err, ErrInvalidArgument) {
		return "", false
	}
	logger.FromContext(ctx).Warn().Err(err).Str("collection", collection.String()).Msg("proxied ledger call failed")
	return fmt.Sprintf(app.FmtCollectionFailed, call.Method, collection), true
}
