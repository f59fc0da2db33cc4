package service

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService issues and verifies delegations for self-authenticating
// principals. It plays the part of the identity provider canister.
type IdentityService interface {
	Delegate(ctx context.Context, req models.DelegationRequest) (models.Delegation, error)
	ParseToken(ctx context.Context, token string) (models.Principal, error)
}

// LedgerService is the state machine of every ICRC-7 collection hosted by
// the replica. The canister argument selects the collection.
type LedgerService interface {
	Settings(ctx context.Context, canister models.Principal) (models.CollectionSettings, error)
	CollectionMetadata(ctx context.Context, canister models.Principal) ([]models.MetadataEntry, error)
	TokenMetadata(ctx context.Context, canister models.Principal, ids []uint64) ([]*models.TokenMetadata, error)
	OwnerOf(ctx context.Context, canister models.Principal, ids []uint64) ([]*models.Account, error)
	BalanceOf(ctx context.Context, canister models.Principal, accounts []models.Account) ([]uint64, error)
	Tokens(ctx context.Context, canister models.Principal, prev, take *uint64) ([]uint64, error)
	TokensOf(ctx context.Context, canister models.Principal, account models.Account, prev, take *uint64) ([]uint64, error)

	Mint(ctx context.Context, canister, caller models.Principal, arg models.MintArg) (models.MintResult, error)
	Transfer(ctx context.Context, canister, caller models.Principal, args []models.TransferArg) ([]*models.TransferResult, error)
	SetMintingAuthority(ctx context.Context, canister, caller models.Principal, authority models.Account) (bool, error)
}

// FactoryService creates collections and keeps their ownership registry.
type FactoryService interface {
	MintCollection(ctx context.Context, caller models.Principal, arg models.CollectionArg, owner models.Account) (models.Result[models.Principal, string], error)
	ShowCollections(ctx context.Context) ([]models.CollectionEntry, error)
	GetUserCollections(ctx context.Context, owner models.Principal) ([]models.Principal, error)
	UpdateMintingAuthority(ctx context.Context, collection, owner models.Principal) (bool, error)
	CheckCollectionOwnership(ctx context.Context, collection, owner models.Principal) (bool, error)
}

// BackendService is the revision-independent core of the dapp backend.
// Failures that the backend reports to callers are returned as the errors
// in errors.go so each interface revision can encode them its own way.
type BackendService interface {
	SubscribeGroup(ctx context.Context, caller models.Principal, group models.Group) ([]uint64, error)
	CreateEvent(ctx context.Context, caller models.Principal, title, description string, metadata models.MetadataValue) (string, error)
	AssignEvent(ctx context.Context, caller models.Principal, eventID string, members []models.Member) ([]uint64, error)
	GetAllGroups(ctx context.Context) ([]models.GroupEntry, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetGroup(ctx context.Context, groupID string) (models.Group, error)
	GetGroupMembers(ctx context.Context, groupID string) ([]models.Member, error)
	RemoveGroup(ctx context.Context, caller models.Principal, groupID string) error
	RemoveEvent(ctx context.Context, caller models.Principal, eventID string) error
	RemoveAllGroups(ctx context.Context, caller models.Principal) error

	GetAllCollections(ctx context.Context) ([]models.CollectionEntry, error)
	GetUserCollections(ctx context.Context, caller models.Principal) ([]models.Principal, error)
	GetUserTokens(ctx context.Context, caller models.Principal) ([]models.TokensCollection, error)
}

// AppInfoService reports replica build information.
type AppInfoService interface {
	Status(ctx context.Context) models.ReplicaStatus
}
