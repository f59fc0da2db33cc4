package replica

import (
	"context"
	"errors"
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

func newBackendV1(t *testing.T, sender models.Principal) (*testReplica, canister.BackendV1) {
	t.Helper()
	r := newTestReplica(t, config.RevisionV1)
	return r, canister.NewBackendV1(r.d.Agent(sender), backendID)
}

func TestBackendV1_WhoamiAllowsAnonymous(t *testing.T) {
	_, backend := newBackendV1(t, models.AnonymousPrincipal)

	principal, err := backend.Whoami(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2vxsx-fae", principal.String())
}

func TestBackendV1_GuardsOtherMethods(t *testing.T) {
	_, backend := newBackendV1(t, models.AnonymousPrincipal)

	_, err := backend.GetAllGroups(context.Background())

	rejectErr := requireReject(t, err, models.RejectCanisterReject, app.ErrorCodeCanisterReject)
	assert.Equal(t, app.MsgCallerIsAnonymous, rejectErr.Message)
}

func TestBackendV1_CallCanisterWhoami(t *testing.T) {
	tests := []struct {
		name   string
		sender models.Principal
		target models.Principal
		want   string
	}{
		{name: "backend answers for itself", sender: alice, target: backendID, want: backendID.String()},
		{name: "factory echoes its argument", sender: alice, target: factoryID, want: models.Principal{}.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReplica(t, config.RevisionV1)

			var got string
			err := r.d.Agent(tt.sender).Call(context.Background(), backendID, canister.MethodCallCanisterWhoami, []any{tt.target}, &got)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("anonymous caller", func(t *testing.T) {
		r := newTestReplica(t, config.RevisionV1)

		err := r.d.Agent(models.AnonymousPrincipal).Call(context.Background(), backendID, canister.MethodCallCanisterWhoami, []any{factoryID}, new(string))

		rejectErr := requireReject(t, err, models.RejectCanisterReject, app.ErrorCodeCanisterReject)
		assert.Equal(t, app.MsgCallerIsAnonymous, rejectErr.Message)
	})

	t.Run("unknown target", func(t *testing.T) {
		r := newTestReplica(t, config.RevisionV1)

		err := r.d.Agent(alice).Call(context.Background(), backendID, canister.MethodCallCanisterWhoami, []any{unknownID}, new(string))

		rejectErr := requireReject(t, err, models.RejectCanisterError, app.ErrorCodeCanisterError)
		assert.Contains(t, rejectErr.Message, app.MsgCanisterNotFound)
	})
}

func TestBackendV1_SubscribeGroup(t *testing.T) {
	members := []models.Member{{Name: "carol", InternetIdentity: bob}}

	tests := []struct {
		name        string
		err         error
		minted      []uint64
		wantCode    uint16
		wantMessage string
		wantBody    []uint64
	}{
		{
			name:        "all minted",
			minted:      []uint64{0, 1},
			wantCode:    models.StatusOK,
			wantMessage: app.MsgAllNFTsMinted,
			wantBody:    []uint64{0, 1},
		},
		{
			name:        "duplicate name",
			err:         service.ErrDuplicateGroup,
			wantCode:    models.StatusDuplicate,
			wantMessage: fmt.Sprintf(app.FmtDuplicateEntry, "hikers"),
			wantBody:    []uint64{},
		},
		{
			name:        "minting failure",
			err:         &service.MintingError{Member: "dave", Minted: []uint64{0}, Err: service.ErrCommemorativeMintRejected},
			wantCode:    models.StatusMintingError,
			wantMessage: fmt.Sprintf(app.FmtErrorMintingNFT, "dave", service.ErrCommemorativeMintRejected),
			wantBody:    []uint64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, backend := newBackendV1(t, alice)
			r.backend.EXPECT().SubscribeGroup(gomock.Any(), alice, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ models.Principal, group models.Group) ([]uint64, error) {
					assert.Equal(t, "hikers", group.GroupName)
					require.NotNil(t, group.GroupLeader)
					assert.Equal(t, alice, group.GroupLeader.Owner)
					require.Len(t, group.GroupMembers, 2)
					assert.Equal(t, members[0], group.GroupMembers[0])
					assert.Equal(t, models.Member{Name: "leader", InternetIdentity: alice}, group.GroupMembers[1])
					return tt.minted, tt.err
				})

			result, err := backend.SubscribeGroup(context.Background(), members, "leader", "hikers")

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.ElementsMatch(t, tt.wantBody, result.Body)
		})
	}
}

func TestBackendV1_SubscribeGroup_InvalidDataRejects(t *testing.T) {
	r, backend := newBackendV1(t, alice)
	r.backend.EXPECT().SubscribeGroup(gomock.Any(), alice, gomock.Any()).
		Return(nil, fmt.Errorf("%w: group name is empty", service.ErrInvalidDataProvided))

	_, err := backend.SubscribeGroup(context.Background(), nil, "leader", "")

	requireReject(t, err, models.RejectCanisterError, app.ErrorCodeInvalidArgument)
}

func TestBackendV1_AssignEvent_NotFound(t *testing.T) {
	r, backend := newBackendV1(t, alice)
	r.backend.EXPECT().AssignEvent(gomock.Any(), alice, "e1", gomock.Any()).Return(nil, service.ErrEventNotFound)

	result, err := backend.AssignEventToGroup(context.Background(), "e1", []models.Member{{Name: "carol", InternetIdentity: bob}})

	require.NoError(t, err)
	assert.Equal(t, models.StatusNotFound, result.Code)
	assert.Equal(t, fmt.Sprintf(app.FmtEventNotFound, "e1"), result.Message)
}

func TestBackendV1_Removals(t *testing.T) {
	r, backend := newBackendV1(t, alice)
	ctx := context.Background()

	r.backend.EXPECT().RemoveGroup(gomock.Any(), alice, "g1").Return(service.ErrGroupNotFound)
	r.backend.EXPECT().RemoveGroup(gomock.Any(), alice, "g2").Return(nil)
	r.backend.EXPECT().RemoveEvent(gomock.Any(), alice, "e1").Return(service.ErrEventNotFound)
	r.backend.EXPECT().RemoveAllGroups(gomock.Any(), alice).Return(nil)

	missing, err := backend.RemoveGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotFound, missing.Code)
	assert.Equal(t, fmt.Sprintf(app.FmtGroupNotFound, "g1"), missing.Message)

	removed, err := backend.RemoveGroup(ctx, "g2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, removed.Code)
	assert.Equal(t, "g2", removed.Body)

	event, err := backend.RemoveEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, event.Code)

	require.NoError(t, backend.RemoveAllGroups(ctx))
}

func TestBackendV1_Listings(t *testing.T) {
	r, backend := newBackendV1(t, alice)
	ctx := context.Background()
	members := []models.Member{{Name: "carol", InternetIdentity: bob}}
	tokens := []models.TokensCollection{{Collection: collectionID, TokenIDs: []uint64{3}}}

	r.backend.EXPECT().GetGroupMembers(gomock.Any(), "g1").Return(members, nil)
	r.backend.EXPECT().GetUserCollections(gomock.Any(), alice).Return([]models.Principal{collectionID}, nil)
	r.backend.EXPECT().GetUserTokens(gomock.Any(), alice).Return(tokens, nil)

	got, err := backend.GetGroupMembers(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(app.FmtGroupMembers, "g1"), got.Message)
	assert.Equal(t, members, got.Body)

	mine, err := backend.GetUserCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Principal{collectionID}, mine.Body)

	held, err := backend.GetUserTokensCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, app.MsgUserTokens, held.Message)
	assert.Equal(t, tokens, held.Body)
}

func TestBackendV1_Proxies(t *testing.T) {
	r, backend := newBackendV1(t, alice)
	r.knownCollection(testSettings())
	ctx := context.Background()

	symbol, err := backend.Symbol(ctx, collectionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, symbol.Code)
	assert.Equal(t, fmt.Sprintf(app.FmtProxyOK, collectionID), symbol.Message)
	assert.Equal(t, "TST", symbol.Body)

	missing, err := backend.Symbol(ctx, unknownID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotFound, missing.Code)
	assert.Equal(t, fmt.Sprintf(app.FmtCollectionFailed, canister.MethodProxySymbol, unknownID), missing.Message)
	assert.Empty(t, missing.Body)

	r.ledger.EXPECT().OwnerOf(gomock.Any(), collectionID, []uint64{1}).Return([]*models.Account{{Owner: bob}}, nil)
	owners, err := backend.OwnerOf(ctx, collectionID, []uint64{1})
	require.NoError(t, err)
	require.Len(t, owners.Body, 1)
	assert.Equal(t, bob, owners.Body[0].Owner)
}

func TestBackendV1_ProxyFailureGoesThroughTheLedger(t *testing.T) {
	r, backend := newBackendV1(t, alice)
	r.knownCollection(testSettings())

	r.ledger.EXPECT().BalanceOf(gomock.Any(), collectionID, gomock.Any()).Return(nil, errors.New("boom"))

	result, err := backend.BalanceOf(context.Background(), collectionID, []models.Account{models.NewAccount(bob)})

	require.NoError(t, err)
	assert.Equal(t, models.StatusNotFound, result.Code)
	require.NotEmpty(t, r.recorder.calls)
	inner := r.recorder.calls[0]
	assert.Equal(t, KindLedger, inner.kind)
	assert.Equal(t, canister.MethodBalanceOf, inner.method)
}

func TestBackendV1_TransferForwardsTheCaller(t *testing.T) {
	r, backend := newBackendV1(t, alice)
	r.knownCollection(testSettings())
	ok := models.Ok[uint64, models.TransferError](12)

	r.ledger.EXPECT().Transfer(gomock.Any(), collectionID, alice, gomock.Any()).
		Return([]*models.TransferResult{&ok}, nil)

	// The caller argument names someone else; the authenticated sender wins.
	result, err := backend.Transfer(context.Background(), collectionID,
		[]models.TransferArg{{To: models.NewAccount(bob), TokenID: 1}}, bob)

	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, result.Code)
	assert.Equal(t, fmt.Sprintf(app.FmtTransferred, alice), result.Message)
	require.Len(t, result.Body, 1)
	require.NotNil(t, result.Body[0].Ok)
	assert.Equal(t, uint64(12), *result.Body[0].Ok)
}
