package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/internal/validators"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// CanisterIDCounter numbers the collections created by the factory.
const CanisterIDCounter = "canister_ids"

// firstCollectionSeq follows the factory, the backend and the identity
// provider in the local canister sequence.
const firstCollectionSeq = 4

// LedgerResolver returns a binding of the ledger canister id.
type LedgerResolver func(id models.Principal) canister.Ledger

type factoryService struct {
	collections store.CollectionRepository
	counters    store.CounterRepository
	ledgers     LedgerResolver
	validator   validators.Validator

	logger *logger.Logger
}

// NewFactoryService constructs the collection factory. ledgers is used to
// reach collections for minting authority updates, so it must send calls
// as the factory canister.
func NewFactoryService(collections store.CollectionRepository, counters store.CounterRepository, ledgers LedgerResolver, validator validators.Validator, logger *logger.Logger) FactoryService {
	return &factoryService{
		collections: collections,
		counters:    counters,
		ledgers:     ledgers,
		validator:   validator,
		logger:      logger,
	}
}

// MintCollection creates a new collection owned by owner. Problems with the
// argument are reported in the Err arm; storage failures as errors.
func (s *factoryService) MintCollection(ctx context.Context, caller models.Principal, arg models.CollectionArg, owner models.Account) (models.Result[models.Principal, string], error) {
	log := logger.FromContext(ctx)

	if caller.IsAnonymous() {
		return models.Result[models.Principal, string]{}, ErrAnonymousCaller
	}
	if err := s.validator.Validate(ctx, arg); err != nil {
		return models.Err[models.Principal](err.Error()), nil
	}
	if err := s.validator.Validate(ctx, owner, validators.FieldOwner, validators.FieldSubaccount); err != nil {
		return models.Err[models.Principal](err.Error()), nil
	}

	seq, err := s.counters.Next(ctx, CanisterIDCounter)
	if err != nil {
		return models.Result[models.Principal, string]{}, fmt.Errorf("%w: %w", ErrCollectionMinting, err)
	}
	id := models.CanisterPrincipal(firstCollectionSeq - 1 + seq)

	settings := arg.Resolve(id, owner)
	err = s.collections.CreateCollection(ctx, settings, time.Now())
	if errors.Is(err, store.ErrCollectionExists) {
		return models.Err[models.Principal](fmt.Sprintf("canister %s is already installed", id)), nil
	}
	if err != nil {
		return models.Result[models.Principal, string]{}, fmt.Errorf("%w: %w", ErrCollectionMinting, err)
	}

	log.Info().Str("collection", id.String()).Str("owner", owner.String()).Str("name", settings.Name).Msg("collection created")
	return models.Ok[models.Principal, string](id), nil
}

func (s *factoryService) ShowCollections(ctx context.Context) ([]models.CollectionEntry, error) {
	return s.collections.ListCollections(ctx)
}

func (s *factoryService) GetUserCollections(ctx context.Context, owner models.Principal) ([]models.Principal, error) {
	return s.collections.ListCollectionsByOwner(ctx, owner)
}

// UpdateMintingAuthority hands the minting authority of collection to the
// default account of owner.
func (s *factoryService) UpdateMintingAuthority(ctx context.Context, collection, owner models.Principal) (bool, error) {
	updated, err := s.ledgers(collection).SetMintingAuthority(ctx, models.NewAccount(owner))
	if err != nil {
		return false, fmt.Errorf("update minting authority of %s: %w", collection, err)
	}
	return updated, nil
}

func (s *factoryService) CheckCollectionOwnership(ctx context.Context, collection, owner models.Principal) (bool, error) {
	settings, err := s.collections.GetCollection(ctx, collection)
	if errors.Is(err, store.ErrCollectionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return settings.Owner.Owner == owner, nil
}
