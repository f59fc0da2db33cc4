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

// BackendV1Canister builds the method table of the envelope revision of the
// backend. Every method except whoami rejects anonymous callers.
func BackendV1Canister(backend service.BackendService, agents service.AgentFactory, self models.Principal) Canister {
	p := proxies{agents: agents, self: self}

	return guarded(Canister{
		canister.MethodWhoami:             query(whoami),
		canister.MethodCallCanisterWhoami: update(canisterWhoami(p)),

		canister.MethodSubscribeGroup: update(func(ctx context.Context, call *Call) ([]any, error) {
			var (
				members               []models.Member
				leaderName, groupName string
			)
			if err := call.Args(&members, &leaderName, &groupName); err != nil {
				return nil, err
			}

			leader := models.NewAccount(call.Caller)
			group := models.Group{
				GroupName:    groupName,
				GroupLeader:  &leader,
				GroupMembers: append(members, models.Member{Name: leaderName, InternetIdentity: call.Caller}),
			}

			minted, err := backend.SubscribeGroup(ctx, call.Caller, group)
			if errors.Is(err, service.ErrDuplicateGroup) {
				return envelope(models.StatusDuplicate, fmt.Sprintf(app.FmtDuplicateEntry, groupName), []uint64{})
			}
			return mintedEnvelope(minted, err)
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

		canister.MethodAssignEventToGroup: update(func(ctx context.Context, call *Call) ([]any, error) {
			var (
				eventID string
				members []models.Member
			)
			if err := call.Args(&eventID, &members); err != nil {
				return nil, err
			}

			minted, err := backend.AssignEvent(ctx, call.Caller, eventID, members)
			if errors.Is(err, service.ErrEventNotFound) {
				return envelope(models.StatusNotFound, fmt.Sprintf(app.FmtEventNotFound, eventID), []uint64{})
			}
			return mintedEnvelope(minted, err)
		}),

		canister.MethodGetAllGroups: query(func(ctx context.Context, call *Call) ([]any, error) {
			groups, err := backend.GetAllGroups(ctx)
			if err != nil {
				return nil, err
			}
			return envelope(models.StatusOK, app.MsgAllGroups, groups)
		}),

		canister.MethodGetAllEvents: query(func(ctx context.Context, call *Call) ([]any, error) {
			events, err := backend.GetAllEvents(ctx)
			if err != nil {
				return nil, err
			}
			return envelope(models.StatusOK, app.MsgAllEvents, events)
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
			return envelope(models.StatusOK, fmt.Sprintf(app.FmtGroupMembers, groupID), members)
		}),

		canister.MethodRemoveGroup: update(func(ctx context.Context, call *Call) ([]any, error) {
			var groupID string
			if err := call.Args(&groupID); err != nil {
				return nil, err
			}
			err := backend.RemoveGroup(ctx, call.Caller, groupID)
			if errors.Is(err, service.ErrGroupNotFound) {
				return envelope(models.StatusNotFound, fmt.Sprintf(app.FmtGroupNotFound, groupID), groupID)
			}
			if err != nil {
				return nil, err
			}
			return envelope(models.StatusOK, app.MsgDeleteOK, groupID)
		}),

		// Removing an unknown event is not an error in this revision.
		canister.MethodRemoveEvent: update(func(ctx context.Context, call *Call) ([]any, error) {
			var eventID string
			if err := call.Args(&eventID); err != nil {
				return nil, err
			}
			err := backend.RemoveEvent(ctx, call.Caller, eventID)
			if err != nil && !errors.Is(err, service.ErrEventNotFound) {
				return nil, err
			}
			return envelope(models.StatusOK, app.MsgDeleteOK, eventID)
		}),

		canister.MethodRemoveAllGroups: update(func(ctx context.Context, call *Call) ([]any, error) {
			return nil, backend.RemoveAllGroups(ctx, call.Caller)
		}),

		canister.MethodGetAllCollections: query(func(ctx context.Context, call *Call) ([]any, error) {
			entries, err := backend.GetAllCollections(ctx)
			if err != nil {
				return nil, err
			}
			return envelope(models.StatusOK, app.MsgCollections, entries)
		}),

		canister.MethodGetUserCollectionsV1: query(func(ctx context.Context, call *Call) ([]any, error) {
			collections, err := backend.GetUserCollections(ctx, call.Caller)
			if err != nil {
				return nil, err
			}
			return envelope(models.StatusOK, app.MsgUserCollections, collections)
		}),

		canister.MethodGetUserTokensCollection: query(func(ctx context.Context, call *Call) ([]any, error) {
			tokens, err := backend.GetUserTokens(ctx, call.Caller)
			if err != nil {
				return nil, err
			}
			return envelope(models.StatusOK, app.MsgUserTokens, tokens)
		}),

		canister.MethodProxySymbol:             query(envelopeProxy(settingProxy(p, canister.Ledger.Symbol))),
		canister.MethodProxyName:               query(envelopeProxy(settingProxy(p, canister.Ledger.Name))),
		canister.MethodProxyDescription:        query(envelopeProxy(settingProxy(p, canister.Ledger.Description))),
		canister.MethodProxyLogo:               query(envelopeProxy(settingProxy(p, canister.Ledger.Logo))),
		canister.MethodProxyTotalSupply:        query(envelopeProxy(settingProxy(p, canister.Ledger.TotalSupply))),
		canister.MethodProxySupplyCap:          query(envelopeProxy(settingProxy(p, canister.Ledger.SupplyCap))),
		canister.MethodProxyMaxQueryBatchSize:  query(envelopeProxy(settingProxy(p, canister.Ledger.MaxQueryBatchSize))),
		canister.MethodProxyMaxUpdateBatchSize: query(envelopeProxy(settingProxy(p, canister.Ledger.MaxUpdateBatchSize))),
		canister.MethodProxyMaxTakeValue:       query(envelopeProxy(settingProxy(p, canister.Ledger.MaxTakeValue))),
		canister.MethodProxyMaxMemoSize:        query(envelopeProxy(settingProxy(p, canister.Ledger.MaxMemoSize))),
		canister.MethodAtomicBatchTransfers:    query(envelopeProxy(settingProxy(p, canister.Ledger.AtomicBatchTransfers))),
		canister.MethodOwnerOf:                 query(envelopeProxy(ownerOfProxy(p))),
		canister.MethodTokens:                  query(envelopeProxy(tokensProxy(p))),
		canister.MethodProxyTokenMetadata:      query(envelopeProxy(tokenMetadataProxy(p))),
		canister.MethodBalanceOf:               query(envelopeProxy(balanceOfProxy(p))),
		canister.MethodTokensOf:                query(envelopeProxy(tokensOfProxy(p))),

		canister.MethodTransfer: update(func(ctx context.Context, call *Call) ([]any, error) {
			collection, results, err := transferProxy(p)(ctx, call)
			if err != nil {
				message, ok := failedProxy(ctx, call, collection, err)
				if !ok {
					return nil, err
				}
				return envelope[[]*models.TransferResult](models.StatusNotFound, message, nil)
			}
			return envelope(models.StatusOK, fmt.Sprintf(app.FmtTransferred, call.Caller), results)
		}),
	}, canister.MethodWhoami)
}

func whoami(_ context.Context, call *Call) ([]any, error) {
	return reply(call.Caller), nil
}

func envelope[T any](code uint16, message string, body T) ([]any, error) {
	return reply(models.NewRequestResult(code, message, body)), nil
}

// mintedEnvelope encodes the outcome of a commemorative minting run.
func mintedEnvelope(minted []uint64, err error) ([]any, error) {
	var mintErr *service.MintingError
	switch {
	case err == nil:
		return envelope(models.StatusOK, app.MsgAllNFTsMinted, minted)
	case errors.As(err, &mintErr):
		return envelope(models.StatusMintingError, fmt.Sprintf(app.FmtErrorMintingNFT, mintErr.Member, mintErr.Err), mintErr.Minted)
	default:
		return nil, err
	}
}

// envelopeProxy answers 200 with the ledger value, or 404 with a zero body
// when the ledger call fails.
func envelopeProxy[T any](proxy ledgerProxy[T]) Handler {
	return func(ctx context.Context, call *Call) ([]any, error) {
		collection, value, err := proxy(ctx, call)
		if err != nil {
			message, ok := failedProxy(ctx, call, collection, err)
			if !ok {
				return nil, err
			}
			var zero T
			return envelope(models.StatusNotFound, message, zero)
		}
		return envelope(models.StatusOK, fmt.Sprintf(app.FmtProxyOK, collection), value)
	}
}
