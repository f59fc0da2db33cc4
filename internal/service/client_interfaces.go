package service

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/crypto"
	"github.com/MKhiriev/icrc7-dapp/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the client identity and its login state.
type ClientAuthService interface {
	// Login opens the sealed identity, creating and sealing a fresh key pair
	// on first use, and proves it by obtaining a delegation. Returns the
	// principal the client now acts as.
	Login(ctx context.Context) (models.Principal, error)

	// Logout removes the identity file. Later calls are anonymous.
	Logout(ctx context.Context) error

	// Identity opens the sealed identity. Returns ErrNotLoggedIn when no
	// login happened yet.
	Identity(ctx context.Context) (*crypto.Identity, error)
}

// DappService forwards user commands to the backend canister and normalises
// both interface revisions into a [models.Outcome]. Transport failures come
// back as errors; canister-level failures are outcomes with a non-2xx code.
type DappService interface {
	Revision() string

	Whoami(ctx context.Context) (models.Outcome, error)

	SubscribeGroup(ctx context.Context, req models.SubscribeGroupRequest) (models.Outcome, error)
	Groups(ctx context.Context) (models.Outcome, error)
	GroupMembers(ctx context.Context, groupID string) (models.Outcome, error)
	RemoveGroup(ctx context.Context, groupID string) (models.Outcome, error)
	RemoveAllGroups(ctx context.Context) (models.Outcome, error)

	CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Outcome, error)
	Events(ctx context.Context) (models.Outcome, error)
	RemoveEvent(ctx context.Context, eventID string) (models.Outcome, error)
	AssignEvent(ctx context.Context, req models.AssignEventRequest) (models.Outcome, error)

	Collections(ctx context.Context) (models.Outcome, error)
	MyCollections(ctx context.Context) (models.Outcome, error)
	MyTokens(ctx context.Context) (models.Outcome, error)

	// CollectionInfo queries every collection setting concurrently and
	// returns them keyed by ledger method name.
	CollectionInfo(ctx context.Context, collection models.Principal) (models.Outcome, error)
	OwnerOf(ctx context.Context, collection models.Principal, ids []uint64) (models.Outcome, error)
	Tokens(ctx context.Context, collection models.Principal, page models.PageRequest) (models.Outcome, error)
	TokensOf(ctx context.Context, collection models.Principal, account models.Account, page models.PageRequest) (models.Outcome, error)
	BalanceOf(ctx context.Context, collection models.Principal, accounts []models.Account) (models.Outcome, error)
	TokenMetadata(ctx context.Context, collection models.Principal, ids []uint64) (models.Outcome, error)
	Transfer(ctx context.Context, collection models.Principal, args []models.TransferArg) (models.Outcome, error)
}

// ClientFactoryService talks to the collection factory directly.
type ClientFactoryService interface {
	MintCollection(ctx context.Context, arg models.CollectionArg, owner *models.Account) (models.Outcome, error)
}

// ClientReplicaService reports replica status and health.
type ClientReplicaService interface {
	Status(ctx context.Context) (models.Outcome, error)
	Health(ctx context.Context, service string) (models.Outcome, error)
}
