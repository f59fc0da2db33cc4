package replica

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// BackendV2Canister builds the method table of the variant revision of the
// backend. Every method except whoami rejects anonymous callers.
func BackendV2Canister(backend service.BackendService, agents service.AgentFactory, self models.Principal) Canister {
	p := proxies{agents: agents, self: self}

	return guarded(Canister{
		canister.MethodWhoami:             query(whoami),
		canister.MethodCallCanisterWhoami: update(canisterWhoami(p)),

		canister.MethodSubscribeGroup: update(func(ctx context.Context, call *Call) ([]any, error) {
			var group models.Group
			if err := call.Args(&group); err != nil {
				return nil, err
			}
			if group.GroupLeader == nil {
				leader := models.NewAccount(call.Caller)
				group.GroupLeader = &leader
			}

			_, err := backend.SubscribeGroup(ctx, call.Caller, group)
			if errors.Is(err, service.ErrDuplicateGroup) {
				return reply(models.DuplicateEntry(fmt.Sprintf(app.FmtDuplicateEntry, group.GroupName))), nil
			}
			return mintedCode(err)
		}),

		canister.MethodCreateEvent: update(func(ctx context.Context, call *Call) ([]any, error) {
			var (
				title, description string
				metadata           models.MetadataValue
			)
			if err := call.Args(&title, &description, &metadata); err != nil {
				return nil, err
			}
			if _, err := backend.CreateEvent(ctx, call.Caller, title, description, metadata); err != nil {
				return nil, err
			}
			return nil, nil
		}),

		// The variant revision assigns an event to the members of a stored
		// group.
		canister.MethodAssignEventToGroup: update(func(ctx context.Context, call *Call) ([]any, error) {
			var eventID, groupID string
			if err := call.Args(&eventID, &groupID); err != nil {
				return nil, err
			}

			group, err := backend.GetGroup(ctx, groupID)
			if errors.Is(err, service.ErrGroupNotFound) {
				return reply(models.RetrieveError(fmt.Sprintf(app.FmtGroupNotFoundV2, groupID))), nil
			}
			if err != nil {
				return nil, err
			}

			_, err = backend.AssignEvent(ctx, call.Caller, eventID, group.GroupMembers)
			if errors.Is(err, service.ErrEventNotFound) {
				return reply(models.RetrieveError(fmt.Sprintf(app.FmtEventNotFoundV2, eventID))), nil
			}
			return mintedCode(err)
		}),

		canister.MethodGetAllGroups: query(func(ctx context.Context, call *Call) ([]any, error) {
			groups, err := backend.GetAllGroups(ctx)
			if err != nil {
				return nil, err
			}
			return reply(groups), nil
		}),

		canister.MethodGetAllEvents: query(func(ctx context.Context, call *Call) ([]any, error) {
			events, err := backend.GetAllEvents(ctx)
			if err != nil {
				return nil, err
			}
			return reply(events), nil
		}),

		canister.MethodGetGroupMembers: query(func(ctx context.Context, call *Call) ([]any, error) {
			var groupID string
			if err := call.Args(&groupID); err != nil {
				return nil, err
			}
			members, err := backend.GetGroupMembers(ctx, groupID)
			if err != nil {
				return nil, err
			}
			return reply(members), nil
		}),

		canister.MethodRemoveGroup: update(func(ctx context.Context, call *Call) ([]any, error) {
			var groupID string
			if err := call.Args(&groupID); err != nil {
				return nil, err
			}
			err := backend.RemoveGroup(ctx, call.Caller, groupID)
			if errors.Is(err, service.ErrGroupNotFound) {
				return reply(models.RetrieveError(fmt.Sprintf(app.FmtGroupNotFoundV2, groupID))), nil
			}
			if err != nil {
				return nil, err
			}
			return reply(models.RemoveOk(app.MsgDeleteOK)), nil
		}),

		canister.MethodRemoveEvent: update(func(ctx context.Context, call *Call) ([]any, error) {
			var eventID string
			if err := call.Args(&eventID); err != nil {
				return nil, err
			}
			err := backend.RemoveEvent(ctx, call.Caller, eventID)
			if errors.Is(err, service.ErrEventNotFound) {
				return reply(models.RetrieveError(fmt.Sprintf(app.FmtEventNotFoundV2, eventID))), nil
			}
			if err != nil {
				return nil, err
			}
			return reply(models.RemoveOk(app.MsgDeleteOK)), nil
		}),

		canister.MethodRemoveAllGroups: update(func(ctx context.Context, call *Call) ([]any, error) {
			return nil, backend.RemoveAllGroups(ctx, call.Caller)
		}),

		// get_user_collections lists the whole factory registry; it is an
		// update call in this revision.
		canister.MethodGetUserCollections: update(func(ctx context.Context, call *Call) ([]any, error) {
			entries, err := backend.GetAllCollections(ctx)
			if err != nil {
				return nil, err
			}
			return reply(entries), nil
		}),

		canister.MethodProxySymbol:             query(variantProxy(settingProxy(p, canister.Ledger.Symbol))),
		canister.MethodProxyName:               query(variantProxy(settingProxy(p, canister.Ledger.Name))),
		canister.MethodProxyDescription:        query(variantProxy(settingProxy(p, canister.Ledger.Description))),
		canister.MethodProxyLogo:               query(variantProxy(settingProxy(p, canister.Ledger.Logo))),
		canister.MethodProxyTotalSupply:        query(variantProxy(settingProxy(p, canister.Ledger.TotalSupply))),
		canister.MethodProxySupplyCap:          query(variantProxy(settingProxy(p, canister.Ledger.SupplyCap))),
		canister.MethodProxyMaxQueryBatchSize:  query(variantProxy(settingProxy(p, canister.Ledger.MaxQueryBatchSize))),
		canister.MethodProxyMaxUpdateBatchSize: query(variantProxy(settingProxy(p, canister.Ledger.MaxUpdateBatchSize))),
		canister.MethodProxyMaxTakeValue:       query(variantProxy(settingProxy(p, canister.Ledger.MaxTakeValue))),
		canister.MethodProxyMaxMemoSize:        query(variantProxy(settingProxy(p, canister.Ledger.MaxMemoSize))),
		canister.MethodAtomicBatchTransfers:    query(variantProxy(settingProxy(p, canister.Ledger.AtomicBatchTransfers))),
		canister.MethodOwnerOf:                 query(variantProxy(ownerOfProxy(p))),
		canister.MethodTokens:                  query(variantProxy(tokensProxy(p))),
		canister.MethodProxyTokenMetadata:      query(variantProxy(tokenMetadataProxy(p))),
		canister.MethodBalanceOf:               query(variantProxy(balanceOfProxy(p))),
		canister.MethodTokensOf:                query(variantProxy(tokensOfProxy(p))),
		canister.MethodTransfer:                update(variantProxy(transferProxy(p))),
	}, canister.MethodWhoami)
}

// mintedCode encodes the outcome of a commemorative minting run.
func mintedCode(err error) ([]any, error) {
	var mintErr *service.MintingError
	switch {
	case err == nil:
		return reply(models.MintOk(app.MsgAllNFTsMinted)), nil
	case errors.As(err, &mintErr):
		return reply(models.MintingError(fmt.Sprintf(app.FmtErrorMintingNFT, mintErr.Member, mintErr.Err))), nil
	default:
		return nil, err
	}
}

// variantProxy answers Ok with the ledger value, or Err with a
// RetrieveError when the ledger call fails.
func variantProxy[T any](proxy ledgerProxy[T]) Handler {
	return func(ctx context.Context, call *Call) ([]any, error) {
		collection, value, err := proxy(ctx, call)
		if err != nil {
			message, ok := failedProxy(ctx, call, collection, err)
			if !ok {
				return nil, err
			}
			return reply(models.Err[T](models.RetrieveError(message))), nil
		}
		return reply(models.Ok[T, models.OperationCode](value)), nil
	}
}
