package store

import (
	"context"
	"time"

	"github.com/MKhiriev/icrc7-dapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// GroupRepository persists backend groups with their ordered members.
type GroupRepository interface {
	CreateGroup(ctx context.Context, id string, group models.Group, createdAt time.Time) error
	GetGroup(ctx context.Context, id string) (models.Group, error)
	ListGroups(ctx context.Context) ([]models.GroupEntry, error)
	DeleteGroup(ctx context.Context, id string) error
	DeleteAllGroups(ctx context.Context) error
}

// EventRepository persists backend events.
type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event, createdAt time.Time) error
	GetEvent(ctx context.Context, id string) (models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// CollectionRepository is the factory registry and the settings store of
// every collection ledger.
type CollectionRepository interface {
	CreateCollection(ctx context.Context, settings models.CollectionSettings, createdAt time.Time) error
	GetCollection(ctx context.Context, canister models.Principal) (models.CollectionSettings, error)
	ListCollections(ctx context.Context) ([]models.CollectionEntry, error)
	ListCollectionsByOwner(ctx context.Context, owner models.Principal) ([]models.Principal, error)
	SetMintingAuthority(ctx context.Context, canister models.Principal, authority models.Account) error
}

// LedgerRepository stores tokens and the transaction log of collections.
type LedgerRepository interface {
	GetTokens(ctx context.Context, canister models.Principal, ids []uint64) (map[uint64]models.Token, error)
	ListTokens(ctx context.Context, canister models.Principal, prev *uint64, take uint64) ([]uint64, error)
	ListTokensOf(ctx context.Context, canister models.Principal, account models.Account, prev *uint64, take uint64) ([]uint64, error)
	CountTokensOf(ctx context.Context, canister models.Principal, account models.Account) (uint64, error)
	ListTokensByOwner(ctx context.Context, owner models.Principal) ([]models.TokensCollection, error)
	Mint(ctx context.Context, token models.Token, tx models.Transaction) (uint64, error)
	Transfer(ctx context.Context, tx models.Transaction) (uint64, error)
	FindDuplicateTransfer(ctx context.Context, tx models.Transaction, since uint64) (uint64, bool, error)
	ArchiveTransactions(ctx context.Context, now time.Time) (int64, error)
}

// CounterRepository hands out monotonically increasing sequence values.
type CounterRepository interface {
	Next(ctx context.Context, name string) (uint64, error)
}

// IdentityFileStorage keeps the sealed client identity on disk.
type IdentityFileStorage interface {
	Save(ctx context.Context, sealed *models.SealedIdentity) error
	Load(ctx context.Context) (*models.SealedIdentity, error)
	Remove(ctx context.Context) error
}
