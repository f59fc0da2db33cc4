package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/internal/validators"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// CommemorativeTokenCounter numbers commemorative tokens across all
// collections. Token ids start at zero.
const CommemorativeTokenCounter = "commemorative_token"

// CommemorativeSymbol is the symbol of every commemorative collection.
const CommemorativeSymbol = "ICP"

type backendService struct {
	groups  store.GroupRepository
	events  store.EventRepository
	tokens  store.LedgerRepository
	counter store.CounterRepository

	// factory and ledgers send calls as the backend canister.
	factory canister.Factory
	ledgers LedgerResolver
	self    models.Principal

	ids       utils.IDGenerator
	validator validators.Validator

	logger *logger.Logger
}

// BackendDeps groups what [NewBackendService] needs.
type BackendDeps struct {
	Groups   store.GroupRepository
	Events   store.EventRepository
	Tokens   store.LedgerRepository
	Counters store.CounterRepository

	Factory canister.Factory
	Ledgers LedgerResolver
	Self    models.Principal

	IDs       utils.IDGenerator
	Validator validators.Validator
}

func NewBackendService(deps BackendDeps, logger *logger.Logger) BackendService {
	return &backendService{
		groups:    deps.Groups,
		events:    deps.Events,
		tokens:    deps.Tokens,
		counter:   deps.Counters,
		factory:   deps.Factory,
		ledgers:   deps.Ledgers,
		self:      deps.Self,
		ids:       deps.IDs,
		validator: deps.Validator,
		logger:    logger,
	}
}

// SubscribeGroup stores group and mints a welcome token for every member,
// in member order. Minting stops at the first failure; the group stays.
func (s *backendService) SubscribeGroup(ctx context.Context, caller models.Principal, group models.Group) ([]uint64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, group); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id := s.ids.Generate()
	err := s.groups.CreateGroup(ctx, id, group, time.Now())
	if errors.Is(err, store.ErrDuplicateGroup) {
		return nil, ErrDuplicateGroup
	}
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	log.Info().Str("group_id", id).Str("caller", caller.String()).Int("members", len(group.GroupMembers)).Msg("group subscribed")

	minted := make([]uint64, 0, len(group.GroupMembers))
	for _, member := range group.GroupMembers {
		name := fmt.Sprintf("Commemorative NFT for %s to join %s group!", member.Name, group.GroupName)
		collection := models.CollectionArg{Symbol: CommemorativeSymbol, Name: name}

		tokenID, err := s.commemorate(ctx, member, collection, models.MintArg{TokenName: &name})
		if err != nil {
			return nil, &MintingError{Member: member.Name, Minted: minted, Err: err}
		}
		minted = append(minted, tokenID)
	}
	return minted, nil
}

// AssignEvent mints a participation token of the event for every member.
func (s *backendService) AssignEvent(ctx context.Context, caller models.Principal, eventID string, members []models.Member) ([]uint64, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}

	for i, member := range members {
		if err = s.validator.Validate(ctx, member); err != nil {
			return nil, fmt.Errorf("%w: member %d: %w", ErrInvalidDataProvided, i, err)
		}
	}

	description := fmt.Sprintf("Commemorative NFT for the event %s", event.Title)
	logo := event.ID

	minted := make([]uint64, 0, len(members))
	for _, member := range members {
		collection := models.CollectionArg{
			Symbol:      CommemorativeSymbol,
			Name:        fmt.Sprintf("Commemorative NFT for %s to partecipate at the event %s!", member.Name, event.Title),
			Description: &description,
			Logo:        &logo,
		}
		mint := models.MintArg{TokenDescription: &description, TokenLogo: &logo}

		tokenID, err := s.commemorate(ctx, member, collection, mint)
		if err != nil {
			return nil, &MintingError{Member: member.Name, Minted: minted, Err: err}
		}
		minted = append(minted, tokenID)
	}

	logger.FromContext(ctx).Info().Str("event_id", eventID).Str("caller", caller.String()).Int("minted", len(minted)).Msg("event assigned")
	return minted, nil
}

// commemorate creates a collection owned by the backend, takes over its
// minting authority and mints the next commemorative token to member.
func (s *backendService) commemorate(ctx context.Context, member models.Member, collection models.CollectionArg, mint models.MintArg) (uint64, error) {
	created, err := s.factory.MintCollection(ctx, collection, models.NewAccount(s.self))
	if err != nil {
		return 0, err
	}
	if created.Ok == nil {
		reason := "empty reply"
		if created.Err != nil {
			reason = *created.Err
		}
		return 0, fmt.Errorf("%w: %s", ErrCollectionMinting, reason)
	}
	id := *created.Ok

	if _, err = s.factory.UpdateMintingAuthority(ctx, id, s.self); err != nil {
		return 0, err
	}

	seq, err := s.counter.Next(ctx, CommemorativeTokenCounter)
	if err != nil {
		return 0, fmt.Errorf("next token id: %w", err)
	}
	mint.To = models.NewAccount(member.InternetIdentity)
	mint.TokenID = seq - 1

	result, err := s.ledgers(id).Mint(ctx, mint)
	if err != nil {
		return 0, err
	}
	if result.Err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommemorativeMintRejected, *result.Err)
	}

	s.logger.Debug().
		Str("collection", id.String()).
		Str("member", member.Name).
		Uint64("token_id", mint.TokenID).
		Msg("commemorative token minted")
	return mint.TokenID, nil
}

func (s *backendService) CreateEvent(ctx context.Context, caller models.Principal, title, description string, metadata models.MetadataValue) (string, error) {
	event := models.Event{ID: s.ids.Generate(), Title: title, Description: description, Metadata: metadata}
	if err := s.validator.Validate(ctx, event); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.events.CreateEvent(ctx, event, time.Now()); err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}

	logger.FromContext(ctx).Info().Str("event_id", event.ID).Str("caller", caller.String()).Msg("event created")
	return event.ID, nil
}

func (s *backendService) GetAllGroups(ctx context.Context) ([]models.GroupEntry, error) {
	return s.groups.ListGroups(ctx)
}

func (s *backendService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.ListEvents(ctx)
}

func (s *backendService) GetGroup(ctx context.Context, groupID string) (models.Group, error) {
	group, err := s.groups.GetGroup(ctx, groupID)
	if errors.Is(err, store.ErrGroupNotFound) {
		return models.Group{}, ErrGroupNotFound
	}
	return group, err
}

// GetGroupMembers returns an empty list for unknown groups.
func (s *backendService) GetGroupMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	group, err := s.GetGroup(ctx, groupID)
	if errors.Is(err, ErrGroupNotFound) {
		return []models.Member{}, nil
	}
	if err != nil {
		return nil, err
	}
	return group.GroupMembers, nil
}

func (s *backendService) RemoveGroup(ctx context.Context, caller models.Principal, groupID string) error {
	err := s.groups.DeleteGroup(ctx, groupID)
	if errors.Is(err, store.ErrGroupNotFound) {
		return ErrGroupNotFound
	}
	if err != nil {
		return fmt.Errorf("remove group: %w", err)
	}

	logger.FromContext(ctx).Info().Str("group_id", groupID).Str("caller", caller.String()).Msg("group removed")
	return nil
}

func (s *backendService) RemoveEvent(ctx context.Context, caller models.Principal, eventID string) error {
	err := s.events.DeleteEvent(ctx, eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		return ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("remove event: %w", err)
	}

	logger.FromContext(ctx).Info().Str("event_id", eventID).Str("caller", caller.String()).Msg("event removed")
	return nil
}

func (s *backendService) RemoveAllGroups(ctx context.Context, caller models.Principal) error {
	if err := s.groups.DeleteAllGroups(ctx); err != nil {
		return fmt.Errorf("remove all groups: %w", err)
	}

	logger.FromContext(ctx).Info().Str("caller", caller.String()).Msg("all groups removed")
	return nil
}

func (s *backendService) GetAllCollections(ctx context.Context) ([]models.CollectionEntry, error) {
	return s.factory.ShowCollections(ctx)
}

func (s *backendService) GetUserCollections(ctx context.Context, caller models.Principal) ([]models.Principal, error) {
	return s.factory.GetUserCollections(ctx, caller)
}

// GetUserTokens reads the shared ledger store directly; collections have no
// per-holder index of their own.
func (s *backendService) GetUserTokens(ctx context.Context, caller models.Principal) ([]models.TokensCollection, error) {
	return s.tokens.ListTokensByOwner(ctx, caller)
}
