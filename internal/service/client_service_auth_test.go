package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/crypto"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/mock"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/models"
)

func newTestAuthSvc(t *testing.T) (ClientAuthService, *mock.MockIdentityFileStorage, *mock.MockKeyChain, *mock.MockIdentityProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockIdentityFileStorage(ctrl)
	keyChain := mock.NewMockKeyChain(ctrl)
	provider := mock.NewMockIdentityProvider(ctrl)

	return NewClientAuthService(storage, keyChain, provider, "secret", logger.Nop()), storage, keyChain, provider
}

func testIdentity(t *testing.T) *crypto.Identity {
	t.Helper()
	identity, err := crypto.NewIdentityFromSeed(make([]byte, 32))
	require.NoError(t, err)
	return identity
}

func delegationFor(p models.Principal) models.Delegation {
	return models.Delegation{Token: "token", Principal: p, Expiration: time.Now().Add(time.Hour)}
}

func TestClientAuthService_Login_FirstRunCreatesIdentity(t *testing.T) {
	svc, storage, keyChain, provider := newTestAuthSvc(t)
	identity := testIdentity(t)
	sealed := &models.SealedIdentity{Version: models.IdentityFileVersion, Principal: identity.Principal().String()}

	gomock.InOrder(
		storage.EXPECT().Load(gomock.Any()).Return(nil, store.ErrIdentityNotFound),
		keyChain.EXPECT().GenerateIdentity().Return(identity, nil),
		keyChain.EXPECT().Seal(identity, "secret").Return(sealed, nil),
		storage.EXPECT().Save(gomock.Any(), sealed).Return(nil),
	)
	provider.EXPECT().Delegate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.DelegationRequest) (models.Delegation, error) {
			_, err := crypto.VerifySignature(req.PublicKey, models.DelegationChallenge(req.Timestamp), req.Signature)
			require.NoError(t, err)
			return delegationFor(identity.Principal()), nil
		})

	p, err := svc.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, identity.Principal(), p)
}

func TestClientAuthService_Login_ReusesSealedIdentity(t *testing.T) {
	svc, storage, keyChain, provider := newTestAuthSvc(t)
	identity := testIdentity(t)
	sealed := &models.SealedIdentity{Version: models.IdentityFileVersion}

	storage.EXPECT().Load(gomock.Any()).Return(sealed, nil)
	keyChain.EXPECT().Open(sealed, "secret").Return(identity, nil)
	provider.EXPECT().Delegate(gomock.Any(), gomock.Any()).Return(delegationFor(identity.Principal()), nil)

	p, err := svc.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, identity.Principal(), p)
}

func TestClientAuthService_Login_WrongPassphrase(t *testing.T) {
	svc, storage, keyChain, _ := newTestAuthSvc(t)
	sealed := &models.SealedIdentity{Version: models.IdentityFileVersion}

	storage.EXPECT().Load(gomock.Any()).Return(sealed, nil)
	keyChain.EXPECT().Open(sealed, "secret").Return(nil, crypto.ErrIdentityDecryption)

	_, err := svc.Login(context.Background())

	require.ErrorIs(t, err, crypto.ErrIdentityDecryption)
}

func TestClientAuthService_Login_ProviderRefuses(t *testing.T) {
	svc, storage, keyChain, provider := newTestAuthSvc(t)
	identity := testIdentity(t)

	storage.EXPECT().Load(gomock.Any()).Return(&models.SealedIdentity{}, nil)
	keyChain.EXPECT().Open(gomock.Any(), "secret").Return(identity, nil)
	provider.EXPECT().Delegate(gomock.Any(), gomock.Any()).Return(models.Delegation{}, adapter.ErrUnauthorized)

	_, err := svc.Login(context.Background())

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestClientAuthService_Login_DelegationForOtherPrincipal(t *testing.T) {
	svc, storage, keyChain, provider := newTestAuthSvc(t)
	identity := testIdentity(t)

	storage.EXPECT().Load(gomock.Any()).Return(&models.SealedIdentity{}, nil)
	keyChain.EXPECT().Open(gomock.Any(), "secret").Return(identity, nil)
	provider.EXPECT().Delegate(gomock.Any(), gomock.Any()).Return(delegationFor(testBob), nil)

	_, err := svc.Login(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientAuthService_Identity_NotLoggedIn(t *testing.T) {
	svc, storage, _, _ := newTestAuthSvc(t)
	storage.EXPECT().Load(gomock.Any()).Return(nil, store.ErrIdentityNotFound)

	_, err := svc.Identity(context.Background())

	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Identity_CorruptedFile(t *testing.T) {
	svc, storage, _, _ := newTestAuthSvc(t)
	storage.EXPECT().Load(gomock.Any()).Return(nil, store.ErrCorruptedIdentity)

	_, err := svc.Identity(context.Background())

	require.ErrorIs(t, err, store.ErrCorruptedIdentity)
	assert.False(t, errors.Is(err, ErrNotLoggedIn))
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, storage, _, _ := newTestAuthSvc(t)
	storage.EXPECT().Remove(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
}
