// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package canister contains typed bindings of the dapp canisters.
//
// Every binding turns a Go method call into a query or update call on an
// [adapter.Agent] with the argument tuple in wire order, and decodes the
// reply tuple into Go types. The backend exists in two interface revisions:
// [BackendV1] wraps every payload in a status envelope, [BackendV2] returns
// raw values and signals failures through variant results. Callers pick the
// revision once; there is no compatibility layer between the two.
package canister

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/canister_mock.go -package=mock

// BackendV1 is the envelope revision of the backend canister.
type BackendV1 interface {
	Whoami(ctx context.Context) (models.Principal, error)

	// SubscribeGroup registers a group; the caller joins it as leader under
	// leaderName. The body lists the token ids minted for the members.
	SubscribeGroup(ctx context.Context, members []models.Member, leaderName, groupName string) (models.RequestResult[[]uint64], error)
	CreateEvent(ctx context.Context, title, description string, metadata models.MetadataValue) error
	AssignEventToGroup(ctx context.Context, eventID string, members []models.Member) (models.RequestResult[[]uint64], error)
	GetAllGroups(ctx context.Context) (models.RequestResult[[]models.GroupEntry], error)
	GetAllEvents(ctx context.Context) (models.RequestResult[[]models.Event], error)
	GetGroupMembers(ctx context.Context, groupID string) (models.RequestResult[[]models.Member], error)
	RemoveGroup(ctx context.Context, groupID string) (models.RequestResult[string], error)
	RemoveEvent(ctx context.Context, eventID string) (models.RequestResult[string], error)
	RemoveAllGroups(ctx context.Context) error

	GetAllCollections(ctx context.Context) (models.RequestResult[[]models.CollectionEntry], error)
	GetUserCollections(ctx context.Context) (models.RequestResult[[]models.Principal], error)
	GetUserTokensCollection(ctx context.Context) (models.RequestResult[[]models.TokensCollection], error)

	ICRC7ProxyV1
}

// ICRC7ProxyV1 forwards ICRC-7 calls to the collection passed as the last
// argument, wrapping the ledger answer in a status envelope.
type ICRC7ProxyV1 interface {
	Symbol(ctx context.Context, collection models.Principal) (models.RequestResult[string], error)
	Name(ctx context.Context, collection models.Principal) (models.RequestResult[string], error)
	Description(ctx context.Context, collection models.Principal) (models.RequestResult[*string], error)
	Logo(ctx context.Context, collection models.Principal) (models.RequestResult[*string], error)
	TotalSupply(ctx context.Context, collection models.Principal) (models.RequestResult[uint64], error)
	SupplyCap(ctx context.Context, collection models.Principal) (models.RequestResult[*uint64], error)
	MaxQueryBatchSize(ctx context.Context, collection models.Principal) (models.RequestResult[*uint64], error)
	MaxUpdateBatchSize(ctx context.Context, collection models.Principal) (models.RequestResult[*uint64], error)
	MaxTakeValue(ctx context.Context, collection models.Principal) (models.RequestResult[*uint64], error)
	MaxMemoSize(ctx context.Context, collection models.Principal) (models.RequestResult[*uint64], error)
	AtomicBatchTransfers(ctx context.Context, collection models.Principal) (models.RequestResult[*bool], error)
	OwnerOf(ctx context.Context, collection models.Principal, ids []uint64) (models.RequestResult[[]*models.Account], error)
	Tokens(ctx context.Context, collection models.Principal, prev, take *uint64) (models.RequestResult[[]uint64], error)
	TokenMetadata(ctx context.Context, collection models.Principal, ids []uint64) (models.RequestResult[[]*models.TokenMetadata], error)
	BalanceOf(ctx context.Context, collection models.Principal, accounts []models.Account) (models.RequestResult[[]uint64], error)
	TokensOf(ctx context.Context, collection models.Principal, account models.Account, prev, take *uint64) (models.RequestResult[[]uint64], error)
	Transfer(ctx context.Context, collection models.Principal, args []models.TransferArg, caller models.Principal) (models.RequestResult[[]*models.TransferResult], error)
}

// BackendV2 is the variant revision of the backend canister.
type BackendV2 interface {
	Whoami(ctx context.Context) (models.Principal, error)

	SubscribeGroup(ctx context.Context, group models.Group) (models.OperationCode, error)
	CreateEvent(ctx context.Context, title, description string, metadata models.MetadataValue) error
	AssignEventToGroup(ctx context.Context, eventID, groupID string) (models.OperationCode, error)
	GetAllGroups(ctx context.Context) ([]models.GroupEntry, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetGroupMembers(ctx context.Context, groupID string) ([]models.Member, error)
	RemoveGroup(ctx context.Context, groupID string) (models.OperationCode, error)
	RemoveEvent(ctx context.Context, eventID string) (models.OperationCode, error)
	RemoveAllGroups(ctx context.Context) error

	// GetUserCollections lists every (collection, owner) pair known to the
	// factory.
	GetUserCollections(ctx context.Context) ([]models.CollectionEntry, error)

	ICRC7ProxyV2
}

// ICRC7ProxyV2 forwards ICRC-7 calls and reports proxy failures as an
// OperationCode in the error arm.
type ICRC7ProxyV2 interface {
	Symbol(ctx context.Context, collection models.Principal) (models.Result[string, models.OperationCode], error)
	Name(ctx context.Context, collection models.Principal) (models.Result[string, models.OperationCode], error)
	Description(ctx context.Context, collection models.Principal) (models.Result[*string, models.OperationCode], error)
	Logo(ctx context.Context, collection models.Principal) (models.Result[*string, models.OperationCode], error)
	TotalSupply(ctx context.Context, collection models.Principal) (models.Result[uint64, models.OperationCode], error)
	SupplyCap(ctx context.Context, collection models.Principal) (models.Result[*uint64, models.OperationCode], error)
	MaxQueryBatchSize(ctx context.Context, collection models.Principal) (models.Result[*uint64, models.OperationCode], error)
	MaxUpdateBatchSize(ctx context.Context, collection models.Principal) (models.Result[*uint64, models.OperationCode], error)
	MaxTakeValue(ctx context.Context, collection models.Principal) (models.Result[*uint64, models.OperationCode], error)
	MaxMemoSize(ctx context.Context, collection models.Principal) (models.Result[*uint64, models.OperationCode], error)
	AtomicBatchTransfers(ctx context.Context, collection models.Principal) (models.Result[*bool, models.OperationCode], error)
	OwnerOf(ctx context.Context, collection models.Principal, ids []uint64) (models.Result[[]*models.Account, models.OperationCode], error)
	Tokens(ctx context.Context, collection models.Principal, prev, take *uint64) (models.Result[[]uint64, models.OperationCode], error)
	TokenMetadata(ctx context.Context, collection models.Principal, ids []uint64) (models.Result[[]*models.TokenMetadata, models.OperationCode], error)
	BalanceOf(ctx context.Context, collection models.Principal, accounts []models.Account) (models.Result[[]uint64, models.OperationCode], error)
	TokensOf(ctx context.Context, collection models.Principal, account models.Account, prev, take *uint64) (models.Result[[]uint64, models.OperationCode], error)
	Transfer(ctx context.Context, collection models.Principal, args []models.TransferArg) (models.Result[[]*models.TransferResult, models.OperationCode], error)
}

// Factory is the collection factory canister.
type Factory interface {
	// MintCollection deploys a collection ledger owned by owner. The error
	// arm carries the factory's rejection text.
	MintCollection(ctx context.Context, arg models.CollectionArg, owner models.Account) (models.Result[models.Principal, string], error)
	ShowCollections(ctx context.Context) ([]models.CollectionEntry, error)
	GetUserCollections(ctx context.Context, owner models.Principal) ([]models.Principal, error)
	UpdateMintingAuthority(ctx context.Context, collection, owner models.Principal) (bool, error)
	CheckCollectionOwnership(ctx context.Context, collection, owner models.Principal) (bool, error)
	Whoami(ctx context.Context, caller models.Principal) (string, error)
}

// Ledger is a single ICRC-7 collection canister.
type Ledger interface {
	Canister() models.Principal

	Symbol(ctx context.Context) (string, error)
	Name(ctx context.Context) (string, error)
	Description(ctx context.Context) (*string, error)
	Logo(ctx context.Context) (*string, error)
	TotalSupply(ctx context.Context) (uint64, error)
	SupplyCap(ctx context.Context) (*uint64, error)
	MaxQueryBatchSize(ctx context.Context) (*uint64, error)
	MaxUpdateBatchSize(ctx context.Context) (*uint64, error)
	DefaultTakeValue(ctx context.Context) (*uint64, error)
	MaxTakeValue(ctx context.Context) (*uint64, error)
	MaxMemoSize(ctx context.Context) (*uint64, error)
	AtomicBatchTransfers(ctx context.Context) (*bool, error)
	TxWindow(ctx context.Context) (*uint64, error)
	PermittedDrift(ctx context.Context) (*uint64, error)
	CollectionMetadata(ctx context.Context) ([]models.MetadataEntry, error)
	TokenMetadata(ctx context.Context, ids []uint64) ([]*models.TokenMetadata, error)
	OwnerOf(ctx context.Context, ids []uint64) ([]*models.Account, error)
	BalanceOf(ctx context.Context, accounts []models.Account) ([]uint64, error)
	Tokens(ctx context.Context, prev, take *uint64) ([]uint64, error)
	TokensOf(ctx context.Context, account models.Account, prev, take *uint64) ([]uint64, error)
	MintingAuthority(ctx context.Context) (*models.Account, error)

	Mint(ctx context.Context, arg models.MintArg) (models.MintResult, error)
	Transfer(ctx context.Context, args []models.TransferArg) ([]*models.TransferResult, error)
	SetMintingAuthority(ctx context.Context, authority models.Account) (bool, error)
}
