package replica

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

func newBackendV2(t *testing.T, sender models.Principal) (*testReplica, canister.BackendV2) {
	t.Helper()
	r := newTestReplica(t, config.RevisionV2)
	return r, canister.NewBackendV2(r.d.Agent(sender), backendID)
}

func TestBackendV2_SubscribeGroup(t *testing.T) {
	group := models.Group{
		GroupName:    "hikers",
		GroupMembers: []models.Member{{Name: "carol", InternetIdentity: bob}},
	}

	tests := []struct {
		name        string
		err         error
		wantVariant string
		wantCode    uint16
	}{
		{name: "minted", wantVariant: "MintOk", wantCode: models.StatusOK},
		{name: "duplicate", err: service.ErrDuplicateGroup, wantVariant: "DuplicateEntry", wantCode: models.StatusDuplicate},
		{
			name:        "minting error",
			err:         &service.MintingError{Member: "carol", Err: service.ErrCollectionMinting},
			wantVariant: "MintingError",
			wantCode:    models.StatusMintingError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, backend := newBackendV2(t, alice)
			r.backend.EXPECT().SubscribeGroup(gomock.Any(), alice, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ models.Principal, got models.Group) ([]uint64, error) {
					assert.Equal(t, group.GroupMembers, got.GroupMembers)
					require.NotNil(t, got.GroupLeader)
					assert.Equal(t, alice, got.GroupLeader.Owner)
					return []uint64{0}, tt.err
				})

			code, err := backend.SubscribeGroup(context.Background(), group)

			require.NoError(t, err)
			variant, status := code.Variant()
			assert.Equal(t, tt.wantVariant, variant)
			assert.Equal(t, tt.wantCode, status.Code)
		})
	}
}

func TestBackendV2_CallCanisterWhoami(t *testing.T) {
	r := newTestReplica(t, config.RevisionV2)

	var got string
	err := r.d.Agent(bob).Call(context.Background(), backendID, canister.MethodCallCanisterWhoami, []any{backendID}, &got)

	require.NoError(t, err)
	assert.Equal(t, backendID.String(), got)
}

func TestBackendV2_AssignEventResolvesTheGroup(t *testing.T) {
	r, backend := newBackendV2(t, alice)
	members := []models.Member{{Name: "carol", InternetIdentity: bob}}

	r.backend.EXPECT().GetGroup(gomock.Any(), "g1").Return(models.Group{GroupName: "hikers", GroupMembers: members}, nil)
	r.backend.EXPECT().AssignEvent(gomock.Any(), alice, "e1", members).Return([]uint64{4}, nil)

	code, err := backend.AssignEventToGroup(context.Background(), "e1", "g1")

	require.NoError(t, err)
	require.NotNil(t, code.MintOk)
	assert.Equal(t, app.MsgAllNFTsMinted, code.MintOk.Message)
}

func TestBackendV2_AssignEventNotFound(t *testing.T) {
	t.Run("group", func(t *testing.T) {
		r, backend := newBackendV2(t, alice)
		r.backend.EXPECT().GetGroup(gomock.Any(), "g1").Return(models.Group{}, service.ErrGroupNotFound)

		code, err := backend.AssignEventToGroup(context.Background(), "e1", "g1")

		require.NoError(t, err)
		require.NotNil(t, code.RetrieveError)
		assert.Equal(t, fmt.Sprintf(app.FmtGroupNotFoundV2, "g1"), code.RetrieveError.Message)
	})

	t.Run("event", func(t *testing.T) {
		r, backend := newBackendV2(t, alice)
		r.backend.EXPECT().GetGroup(gomock.Any(), "g1").Return(models.Group{GroupName: "hikers"}, nil)
		r.backend.EXPECT().AssignEvent(gomock.Any(), alice, "e1", gomock.Any()).Return(nil, service.ErrEventNotFound)

		code, err := backend.AssignEventToGroup(context.Background(), "e1", "g1")

		require.NoError(t, err)
		require.NotNil(t, code.RetrieveError)
		assert.Equal(t, models.StatusNotFound, code.RetrieveError.Code)
		assert.Equal(t, fmt.Sprintf(app.FmtEventNotFoundV2, "e1"), code.RetrieveError.Message)
	})
}

func TestBackendV2_Removals(t *testing.T) {
	r, backend := newBackendV2(t, alice)
	ctx := context.Background()

	r.backend.EXPECT().RemoveGroup(gomock.Any(), alice, "g1").Return(nil)
	r.backend.EXPECT().RemoveEvent(gomock.Any(), alice, "e1").Return(service.ErrEventNotFound)

	removed, err := backend.RemoveGroup(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, removed.IsOk())

	missing, err := backend.RemoveEvent(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, missing.RetrieveError)
}

func TestBackendV2_GetUserCollectionsIsAnUpdate(t *testing.T) {
	r, backend := newBackendV2(t, alice)
	entries := []models.CollectionEntry{{Collection: collectionID, Owner: alice}}
	r.backend.EXPECT().GetAllCollections(gomock.Any()).Return(entries, nil)

	err := r.d.Agent(alice).Query(context.Background(), backendID, canister.MethodGetUserCollections, nil)
	requireReject(t, err, models.RejectCanisterReject, app.ErrorCodeCanisterReject)

	got, err := backend.GetUserCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestBackendV2_Proxies(t *testing.T) {
	r, backend := newBackendV2(t, alice)
	r.knownCollection(testSettings())
	ctx := context.Background()

	description, err := backend.Description(ctx, collectionID)
	require.NoError(t, err)
	require.NotNil(t, description.Ok)
	require.NotNil(t, *description.Ok)
	assert.Equal(t, "hikes", **description.Ok)

	r.ledger.EXPECT().OwnerOf(gomock.Any(), collectionID, gomock.Any()).Return(nil, service.ErrExceedsMaxQueryBatchSize)
	owners, err := backend.OwnerOf(ctx, collectionID, make([]uint64, 40))
	require.NoError(t, err)
	assert.Nil(t, owners.Ok)
	require.NotNil(t, owners.Err)
	require.NotNil(t, owners.Err.RetrieveError)
	assert.Equal(t, fmt.Sprintf(app.FmtCollectionFailed, canister.MethodOwnerOf, collectionID), owners.Err.RetrieveError.Message)

	supply, err := backend.TotalSupply(ctx, unknownID)
	require.NoError(t, err)
	require.NotNil(t, supply.Err)
}

func TestBackendV2_TransferForwardsTheCaller(t *testing.T) {
	r, backend := newBackendV2(t, bob)
	r.knownCollection(testSettings())
	ok := models.Ok[uint64, models.TransferError](3)

	r.ledger.EXPECT().Transfer(gomock.Any(), collectionID, bob, gomock.Any()).Return([]*models.TransferResult{&ok}, nil)

	result, err := backend.Transfer(context.Background(), collectionID, []models.TransferArg{{To: models.NewAccount(alice), TokenID: 1}})

	require.NoError(t, err)
	require.NotNil(t, result.Ok)
	require.Len(t, *result.Ok, 1)
	assert.Equal(t, uint64(3), *(*result.Ok)[0].Ok)
}
