package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/mock"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/internal/validators"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type factoryFixture struct {
	svc         FactoryService
	collections *mock.MockCollectionRepository
	counters    *mock.MockCounterRepository
	ledger      *mock.MockLedger
	resolved    []models.Principal
}

func newFactoryFixture(t *testing.T) *factoryFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &factoryFixture{
		collections: mock.NewMockCollectionRepository(ctrl),
		counters:    mock.NewMockCounterRepository(ctrl),
		ledger:      mock.NewMockLedger(ctrl),
	}
	resolve := func(id models.Principal) canister.Ledger {
		f.resolved = append(f.resolved, id)
		return f.ledger
	}
	f.svc = NewFactoryService(f.collections, f.counters, resolve, validators.NewRequestValidator(), logger.Nop())
	return f
}

func TestFactory_MintCollection_AllocatesCanisterIDs(t *testing.T) {
	f := newFactoryFixture(t)
	owner := models.NewAccount(ledgerOwner)
	arg := models.CollectionArg{Symbol: "TST", Name: "Test"}

	f.counters.EXPECT().Next(gomock.Any(), CanisterIDCounter).Return(uint64(1), nil)
	f.collections.EXPECT().CreateCollection(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, settings models.CollectionSettings, _ time.Time) error {
			assert.Equal(t, models.CanisterPrincipal(4), settings.Canister)
			assert.Equal(t, owner, settings.Owner)
			require.NotNil(t, settings.MintingAuthority)
			assert.Equal(t, owner, *settings.MintingAuthority)
			assert.Equal(t, uint64(models.DefaultMaxTakeValue), settings.MaxTakeValue)
			return nil
		})

	result, err := f.svc.MintCollection(context.Background(), ledgerAlice, arg, owner)

	require.NoError(t, err)
	require.NotNil(t, result.Ok)
	assert.Equal(t, models.CanisterPrincipal(4), *result.Ok)
}

func TestFactory_MintCollection_Anonymous(t *testing.T) {
	f := newFactoryFixture(t)

	_, err := f.svc.MintCollection(context.Background(), models.AnonymousPrincipal, models.CollectionArg{}, models.NewAccount(ledgerOwner))

	require.ErrorIs(t, err, ErrAnonymousCaller)
}

func TestFactory_MintCollection_InvalidArgIsErrArm(t *testing.T) {
	f := newFactoryFixture(t)
	zero := uint64(0)

	result, err := f.svc.MintCollection(context.Background(), ledgerAlice, models.CollectionArg{SupplyCap: &zero}, models.NewAccount(ledgerOwner))

	require.NoError(t, err)
	require.NotNil(t, result.Err)
	assert.Equal(t, validators.ErrSupplyCapBelowOneToken.Error(), *result.Err)
}

func TestFactory_MintCollection_AnonymousOwnerIsErrArm(t *testing.T) {
	f := newFactoryFixture(t)

	result, err := f.svc.MintCollection(context.Background(), ledgerAlice, models.CollectionArg{}, models.NewAccount(models.AnonymousPrincipal))

	require.NoError(t, err)
	require.NotNil(t, result.Err)
}

func TestFactory_MintCollection_AlreadyInstalled(t *testing.T) {
	f := newFactoryFixture(t)
	f.counters.EXPECT().Next(gomock.Any(), CanisterIDCounter).Return(uint64(2), nil)
	f.collections.EXPECT().CreateCollection(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrCollectionExists)

	result, err := f.svc.MintCollection(context.Background(), ledgerAlice, models.CollectionArg{}, models.NewAccount(ledgerOwner))

	require.NoError(t, err)
	require.NotNil(t, result.Err)
	assert.Contains(t, *result.Err, models.CanisterPrincipal(5).String())
}

func TestFactory_MintCollection_StorageFailure(t *testing.T) {
	f := newFactoryFixture(t)
	f.counters.EXPECT().Next(gomock.Any(), CanisterIDCounter).Return(uint64(0), errors.New("disk full"))

	_, err := f.svc.MintCollection(context.Background(), ledgerAlice, models.CollectionArg{}, models.NewAccount(ledgerOwner))

	require.ErrorIs(t, err, ErrCollectionMinting)
}

func TestFactory_UpdateMintingAuthority(t *testing.T) {
	f := newFactoryFixture(t)
	f.ledger.EXPECT().SetMintingAuthority(gomock.Any(), models.NewAccount(ledgerBob)).Return(true, nil)

	ok, err := f.svc.UpdateMintingAuthority(context.Background(), testCollection, ledgerBob)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []models.Principal{testCollection}, f.resolved)
}

func TestFactory_CheckCollectionOwnership(t *testing.T) {
	tests := []struct {
		name  string
		owner models.Principal
		err   error
		want  bool
	}{
		{name: "owner", owner: ledgerOwner, want: true},
		{name: "someone else", owner: ledgerBob, want: false},
		{name: "unknown collection", owner: ledgerOwner, err: store.ErrCollectionNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFactoryFixture(t)
			f.collections.EXPECT().GetCollection(gomock.Any(), testCollection).Return(testSettings(), tt.err)

			ok, err := f.svc.CheckCollectionOwnership(context.Background(), testCollection, tt.owner)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestFactory_Listings(t *testing.T) {
	f := newFactoryFixture(t)
	entries := []models.CollectionEntry{{Collection: testCollection, Owner: ledgerOwner}}
	f.collections.EXPECT().ListCollections(gomock.Any()).Return(entries, nil)
	f.collections.EXPECT().ListCollectionsByOwner(gomock.Any(), ledgerOwner).Return([]models.Principal{testCollection}, nil)

	all, err := f.svc.ShowCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, all)

	mine, err := f.svc.GetUserCollections(context.Background(), ledgerOwner)
	require.NoError(t, err)
	assert.Equal(t, []models.Principal{testCollection}, mine)
}
