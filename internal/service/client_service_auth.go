package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/crypto"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type clientAuthService struct {
	identityStorage store.IdentityFileStorage
	keyChain        crypto.KeyChain
	provider        adapter.IdentityProvider
	passphrase      string

	logger *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService]. The identity file is
// sealed with passphrase; provider proves the identity on login.
func NewClientAuthService(identityStorage store.IdentityFileStorage, keyChain crypto.KeyChain, provider adapter.IdentityProvider, passphrase string, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		identityStorage: identityStorage,
		keyChain:        keyChain,
		provider:        provider,
		passphrase:      passphrase,
		logger:          logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context) (models.Principal, error) {
	identity, err := a.Identity(ctx)
	if errors.Is(err, ErrNotLoggedIn) {
		identity, err = a.createIdentity(ctx)
	}
	if err != nil {
		return models.Principal{}, err
	}

	// one delegation round trip proves the provider accepts the key
	if _, err = adapter.NewDelegationTokenSource(ctx, a.provider, identity).Token(); err != nil {
		return models.Principal{}, fmt.Errorf("obtain delegation: %w", mapAgentError(err))
	}

	a.logger.Info().Str("principal", identity.Principal().String()).Msg("logged in")
	return identity.Principal(), nil
}

func (a *clientAuthService) createIdentity(ctx context.Context) (*crypto.Identity, error) {
	identity, err := a.keyChain.GenerateIdentity()
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}

	sealed, err := a.keyChain.Seal(identity, a.passphrase)
	if err != nil {
		return nil, fmt.Errorf("seal identity: %w", err)
	}

	if err = a.identityStorage.Save(ctx, sealed); err != nil {
		return nil, fmt.Errorf("save identity: %w", err)
	}

	a.logger.Info().Str("principal", identity.Principal().String()).Msg("created new identity")
	return identity, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.identityStorage.Remove(ctx); err != nil {
		return fmt.Errorf("remove identity: %w", err)
	}
	return nil
}

func (a *clientAuthService) Identity(ctx context.Context) (*crypto.Identity, error) {
	sealed, err := a.identityStorage.Load(ctx)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}

	identity, err := a.keyChain.Open(sealed, a.passphrase)
	if err != nil {
		return nil, fmt.Errorf("open identity: %w", err)
	}
	return identity, nil
}
