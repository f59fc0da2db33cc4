package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

func testCollection(n uint64, owner models.Principal) models.CollectionSettings {
	description := "hiking club"
	supplyCap := uint64(10)
	return models.CollectionArg{
		Symbol:      "HIKE",
		Name:        "Hikers",
		Description: &description,
		SupplyCap:   &supplyCap,
	}.Resolve(models.CanisterPrincipal(n), models.NewAccount(owner))
}

func TestCollectionRepository_CreateAndGet(t *testing.T) {
	repo := NewCollectionRepository(newSQLiteDB(t), logger.Nop())
	ctx := context.Background()
	owner := models.CanisterPrincipal(2)

	want := testCollection(5, owner)
	require.NoError(t, repo.CreateCollection(ctx, want, time.Now()))

	got, err := repo.GetCollection(ctx, want.Canister)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, models.DefaultTxWindow, got.TxWindow)
	assert.Nil(t, got.Logo)

	err = repo.CreateCollection(ctx, want, time.Now())
	assert.ErrorIs(t, err, ErrCollectionExists)

	_, err = repo.GetCollection(ctx, models.CanisterPrincipal(99))
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestCollectionRepository_ListAndListByOwner(t *testing.T) {
	repo := NewCollectionRepository(newSQLiteDB(t), logger.Nop())
	ctx := context.Background()
	alice := models.CanisterPrincipal(2)
	bob := models.CanisterPrincipal(3)
	now := time.Unix(1_700_000_000, 0)

	require.NoError(t, repo.CreateCollection(ctx, testCollection(5, alice), now))
	require.NoError(t, repo.CreateCollection(ctx, testCollection(6, bob), now.Add(time.Second)))
	require.NoError(t, repo.CreateCollection(ctx, testCollection(7, alice), now.Add(2*time.Second)))

	all, err := repo.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CollectionEntry{
		{Collection: models.CanisterPrincipal(5), Owner: alice},
		{Collection: models.CanisterPrincipal(6), Owner: bob},
		{Collection: models.CanisterPrincipal(7), Owner: alice},
	}, all)

	mine, err := repo.ListCollectionsByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []models.Principal{models.CanisterPrincipal(5), models.CanisterPrincipal(7)}, mine)

	none, err := repo.ListCollectionsByOwner(ctx, models.AnonymousPrincipal)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCollectionRepository_SetMintingAuthority(t *testing.T) {
	repo := NewCollectionRepository(newSQLiteDB(t), logger.Nop())
	ctx := context.Background()
	s := testCollection(5, models.CanisterPrincipal(2))
	require.NoError(t, repo.CreateCollection(ctx, s, time.Now()))

	backend := models.NewAccount(models.CanisterPrincipal(2))
	sub := make([]byte, models.SubaccountLength)
	sub[0] = 9
	backend.Subaccount = sub

	require.NoError(t, repo.SetMintingAuthority(ctx, s.Canister, backend))

	got, err := repo.GetCollection(ctx, s.Canister)
	require.NoError(t, err)
	require.NotNil(t, got.MintingAuthority)
	assert.True(t, got.MintingAuthority.Equal(backend))

	err = repo.SetMintingAuthority(ctx, models.CanisterPrincipal(42), backend)
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestCollectionRepository_CreateUniqueViolationPostgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectExec(`INSERT INTO collections \(owner,canister_id`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateCollection(context.Background(), testCollection(5, models.CanisterPrincipal(2)), time.Now())
	assert.ErrorIs(t, err, ErrCollectionExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM collections WHERE canister_id = \\$1").
		WithArgs(models.CanisterPrincipal(5).String()).
		WillReturnRows(sqlmock.NewRows([]string{"canister_id"}).AddRow("bad"))

	_, err := repo.GetCollection(context.Background(), models.CanisterPrincipal(5))
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}
