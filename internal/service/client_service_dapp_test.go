package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/mock"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var (
	testSender     = models.SelfAuthenticatingPrincipal([]byte("sender"))
	testCollection = models.CanisterPrincipal(4)
	testBob        = models.SelfAuthenticatingPrincipal([]byte("bob"))
)

func ptr[T any](v T) *T { return &v }

// ── envelope revision ────────────────────────────────────────────────────────

func TestDappServiceV1_SubscribeGroup_ForwardsVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	members := []models.Member{{Name: "bob", InternetIdentity: testBob}}
	backend.EXPECT().
		SubscribeGroup(gomock.Any(), members, "alice", "Team").
		Return(models.NewRequestResult(models.StatusOK, "Group subscribed", []uint64{0, 1}), nil)

	out, err := svc.SubscribeGroup(context.Background(), models.SubscribeGroupRequest{
		Members:    members,
		LeaderName: "alice",
		GroupName:  "Team",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, out.Code)
	assert.Equal(t, "Group subscribed", out.Message)
	assert.Equal(t, []uint64{0, 1}, out.Body)
}

func TestDappServiceV1_SubscribeGroup_DuplicateIsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	backend.EXPECT().
		SubscribeGroup(gomock.Any(), gomock.Any(), "", "Team").
		Return(models.NewRequestResult[[]uint64](models.StatusDuplicate, "Group name already exists", nil), nil)

	out, err := svc.SubscribeGroup(context.Background(), models.SubscribeGroupRequest{GroupName: "Team"})

	require.NoError(t, err)
	assert.False(t, out.OK())
	assert.Equal(t, models.StatusDuplicate, out.Code)
}

func TestDappServiceV1_AssignEvent_GroupIDOnlyUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	_, err := svc.AssignEvent(context.Background(), models.AssignEventRequest{EventID: "e", GroupID: "g"})

	require.ErrorIs(t, err, ErrUnsupportedByRevision)
}

func TestDappServiceV1_CreateEvent_InvalidMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	_, err := svc.CreateEvent(context.Background(), models.CreateEventRequest{Title: "t"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDappServiceV1_CreateEvent_UnitReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	meta := models.TextValue("gold")
	backend.EXPECT().CreateEvent(gomock.Any(), "Launch", "first", meta).Return(nil)

	out, err := svc.CreateEvent(context.Background(), models.CreateEventRequest{Title: "Launch", Description: "first", Metadata: meta})

	require.NoError(t, err)
	assert.True(t, out.OK())
}

func TestDappServiceV1_Transfer_PassesSenderAsCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	args := []models.TransferArg{{To: models.NewAccount(testBob), TokenID: 3}}
	backend.EXPECT().
		Transfer(gomock.Any(), testCollection, args, testSender).
		Return(models.NewRequestResult[[]*models.TransferResult](models.StatusOK, "", nil), nil)

	_, err := svc.Transfer(context.Background(), testCollection, args)
	require.NoError(t, err)
}

func TestDappServiceV1_Whoami_AnonymousRejectMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	reject := &adapter.RejectError{Method: canister.MethodWhoami, Message: app.MsgCallerIsAnonymous}
	backend.EXPECT().Whoami(gomock.Any()).Return(models.Principal{}, reject)

	_, err := svc.Whoami(context.Background())

	require.ErrorIs(t, err, ErrAnonymousCaller)
	var rejectErr *adapter.RejectError
	assert.True(t, errors.As(err, &rejectErr))
}

func TestDappServiceV1_Groups_ReplicaDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	backend.EXPECT().GetAllGroups(gomock.Any()).
		Return(models.RequestResult[[]models.GroupEntry]{}, adapter.ErrServiceUnavailable)

	_, err := svc.Groups(context.Background())

	require.ErrorIs(t, err, ErrReplicaUnavailable)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
}

func TestDappServiceV1_CollectionInfo_CollectsEverySetting(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV1(ctrl)
	svc := NewDappServiceV1(backend, testSender, logger.Nop())

	backend.EXPECT().Symbol(gomock.Any(), testCollection).Return(models.NewRequestResult(models.StatusOK, "", "MTK"), nil)
	backend.EXPECT().Name(gomock.Any(), testCollection).Return(models.NewRequestResult(models.StatusOK, "", "My Token"), nil)
	backend.EXPECT().Description(gomock.Any(), testCollection).Return(models.NewRequestResult[*string](models.StatusOK, "", nil), nil)
	backend.EXPECT().Logo(gomock.Any(), testCollection).Return(models.NewRequestResult[*string](models.StatusOK, "", nil), nil)
	backend.EXPECT().TotalSupply(gomock.Any(), testCollection).Return(models.NewRequestResult(models.StatusOK, "", uint64(2)), nil)
	backend.EXPECT().SupplyCap(gomock.Any(), testCollection).Return(models.NewRequestResult(models.StatusOK, "", ptr(uint64(100))), nil)
	backend.EXPECT().MaxQueryBatchSize(gomock.Any(), testCollection).Return(models.NewRequestResult[*uint64](models.StatusOK, "", nil), nil)
	backend.EXPECT().MaxUpdateBatchSize(gomock.Any(), testCollection).Return(models.NewRequestResult[*uint64](models.StatusOK, "", nil), nil)
	backend.EXPECT().MaxTakeValue(gomock.Any(), testCollection).Return(models.NewRequestResult[*uint64](models.StatusOK, "", nil), nil)
	backend.EXPECT().MaxMemoSize(gomock.Any(), testCollection).Return(models.NewRequestResult[*uint64](models.StatusOK, "", nil), nil)
	backend.EXPECT().AtomicBatchTransfers(gomock.Any(), testCollection).Return(models.NewRequestResult(models.StatusOK, "", ptr(true)), nil)

	out, err := svc.CollectionInfo(context.Background(), testCollection)

	require.NoError(t, err)
	require.True(t, out.OK())
	body, isMap := out.Body.(map[string]any)
	require.True(t, isMap)
	assert.Len(t, body, 11)
	assert.Equal(t, "MTK", body[canister.MethodSymbol])
	assert.Equal(t, uint64(2), body[canister.MethodTotalSupply])
	assert.Equal(t, ptr(uint64(100)), body[canister.MethodSupplyCap])
}

// ── variant revision ─────────────────────────────────────────────────────────

func newV2(t *testing.T) (DappService, *mock.MockBackendV2, *mock.MockFactory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendV2(ctrl)
	factory := mock.NewMockFactory(ctrl)
	return NewDappServiceV2(backend, factory, testSender, logger.Nop()), backend, factory
}

func TestDappServiceV2_Revision(t *testing.T) {
	svc, _, _ := newV2(t)
	assert.Equal(t, config.RevisionV2, svc.Revision())
}

func TestDappServiceV2_SubscribeGroup_LeaderAppendedLast(t *testing.T) {
	svc, backend, _ := newV2(t)

	want := models.Group{
		GroupName: "Team",
		GroupMembers: []models.Member{
			{Name: "bob", InternetIdentity: testBob},
			{Name: "alice", InternetIdentity: testSender},
		},
	}
	backend.EXPECT().SubscribeGroup(gomock.Any(), want).Return(models.MintOk("Group subscribed"), nil)

	out, err := svc.SubscribeGroup(context.Background(), models.SubscribeGroupRequest{
		Members:    []models.Member{{Name: "bob", InternetIdentity: testBob}},
		LeaderName: "alice",
		GroupName:  "Team",
	})

	require.NoError(t, err)
	assert.Equal(t, "MintOk", out.Variant)
	assert.Equal(t, models.StatusOK, out.Code)
}

func TestDappServiceV2_SubscribeGroup_EmptyVariant(t *testing.T) {
	svc, backend, _ := newV2(t)
	backend.EXPECT().SubscribeGroup(gomock.Any(), gomock.Any()).Return(models.OperationCode{}, nil)

	_, err := svc.SubscribeGroup(context.Background(), models.SubscribeGroupRequest{GroupName: "Team"})

	require.ErrorIs(t, err, ErrEmptyVariant)
}

func TestDappServiceV2_AssignEvent_UsesGroupID(t *testing.T) {
	svc, backend, _ := newV2(t)
	backend.EXPECT().AssignEventToGroup(gomock.Any(), "e1", "g1").Return(models.MintOk("Event assigned"), nil)

	out, err := svc.AssignEvent(context.Background(), models.AssignEventRequest{EventID: "e1", GroupID: "g1"})

	require.NoError(t, err)
	assert.True(t, out.OK())
}

func TestDappServiceV2_AssignEvent_MembersUnsupported(t *testing.T) {
	svc, _, _ := newV2(t)

	_, err := svc.AssignEvent(context.Background(), models.AssignEventRequest{
		EventID: "e1",
		Members: []models.Member{{Name: "bob", InternetIdentity: testBob}},
	})

	require.ErrorIs(t, err, ErrUnsupportedByRevision)
}

func TestDappServiceV2_RemoveGroup_NotFoundIsOutcome(t *testing.T) {
	svc, backend, _ := newV2(t)
	backend.EXPECT().RemoveGroup(gomock.Any(), "missing").Return(models.RetrieveError("Group not found"), nil)

	out, err := svc.RemoveGroup(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, out.OK())
	assert.Equal(t, "RetrieveError", out.Variant)
}

func TestDappServiceV2_MyCollections_AsksFactoryForSender(t *testing.T) {
	svc, _, factory := newV2(t)
	factory.EXPECT().GetUserCollections(gomock.Any(), testSender).Return([]models.Principal{testCollection}, nil)

	out, err := svc.MyCollections(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Principal{testCollection}, out.Body)
}

func TestDappServiceV2_MyTokens_Unsupported(t *testing.T) {
	svc, _, _ := newV2(t)

	_, err := svc.MyTokens(context.Background())

	require.ErrorIs(t, err, ErrUnsupportedByRevision)
}

func TestDappServiceV2_OwnerOf_ErrorArm(t *testing.T) {
	svc, backend, _ := newV2(t)
	backend.EXPECT().OwnerOf(gomock.Any(), testCollection, []uint64{9}).
		Return(models.Err[[]*models.Account](models.RetrieveError("collection unreachable")), nil)

	out, err := svc.OwnerOf(context.Background(), testCollection, []uint64{9})

	require.NoError(t, err)
	assert.False(t, out.OK())
	assert.Equal(t, "collection unreachable", out.Message)
}

func TestDappServiceV2_Tokens_ForwardsPage(t *testing.T) {
	svc, backend, _ := newV2(t)
	prev, take := ptr(uint64(2)), ptr(uint64(5))
	backend.EXPECT().Tokens(gomock.Any(), testCollection, prev, take).
		Return(models.Ok[[]uint64, models.OperationCode]([]uint64{3, 4}), nil)

	out, err := svc.Tokens(context.Background(), testCollection, models.PageRequest{Prev: prev, Take: take})

	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Variant)
	assert.Equal(t, []uint64{3, 4}, out.Body)
}

func TestDappServiceV2_CollectionInfo_FirstFailureWins(t *testing.T) {
	svc, backend, _ := newV2(t)

	var calls atomic.Int32
	okStr := func(v string) (models.Result[string, models.OperationCode], error) {
		calls.Add(1)
		return models.Ok[string, models.OperationCode](v), nil
	}
	okNat := func() (models.Result[*uint64, models.OperationCode], error) {
		calls.Add(1)
		return models.Ok[*uint64, models.OperationCode](nil), nil
	}
	okText := func() (models.Result[*string, models.OperationCode], error) {
		calls.Add(1)
		return models.Ok[*string, models.OperationCode](nil), nil
	}

	backend.EXPECT().Symbol(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[string, models.OperationCode], error) {
		return okStr("MTK")
	})
	backend.EXPECT().Name(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[string, models.OperationCode], error) {
		return okStr("My Token")
	})
	backend.EXPECT().Description(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[*string, models.OperationCode], error) {
		return okText()
	})
	backend.EXPECT().Logo(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[*string, models.OperationCode], error) {
		return okText()
	})
	backend.EXPECT().TotalSupply(gomock.Any(), testCollection).
		Return(models.Err[uint64](models.RetrieveError("ledger unreachable")), nil)
	backend.EXPECT().SupplyCap(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[*uint64, models.OperationCode], error) {
		return okNat()
	})
	backend.EXPECT().MaxQueryBatchSize(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[*uint64, models.OperationCode], error) {
		return okNat()
	})
	backend.EXPECT().MaxUpdateBatchSize(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[*uint64, models.OperationCode], error) {
		return okNat()
	})
	backend.EXPECT().MaxTakeValue(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[*uint64, models.OperationCode], error) {
		return okNat()
	})
	backend.EXPECT().MaxMemoSize(gomock.Any(), testCollection).DoAndReturn(func(context.Context, models.Principal) (models.Result[*uint64, models.OperationCode], error) {
		return okNat()
	})
	backend.EXPECT().AtomicBatchTransfers(gomock.Any(), testCollection).
		Return(models.Ok[*bool, models.OperationCode](ptr(true)), nil)

	out, err := svc.CollectionInfo(context.Background(), testCollection)

	require.NoError(t, err)
	assert.Equal(t, models.StatusNotFound, out.Code)
	assert.Equal(t, "ledger unreachable", out.Message)
	assert.EqualValues(t, 9, calls.Load())
}

func TestDappServiceV2_CollectionInfo_TransportErrorNamesQuery(t *testing.T) {
	svc, backend, _ := newV2(t)

	backend.EXPECT().Symbol(gomock.Any(), gomock.Any()).Return(models.Result[string, models.OperationCode]{}, adapter.ErrBadGateway).AnyTimes()
	backend.EXPECT().Name(gomock.Any(), gomock.Any()).Return(models.Ok[string, models.OperationCode]("n"), nil).AnyTimes()
	backend.EXPECT().Description(gomock.Any(), gomock.Any()).Return(models.Ok[*string, models.OperationCode](nil), nil).AnyTimes()
	backend.EXPECT().Logo(gomock.Any(), gomock.Any()).Return(models.Ok[*string, models.OperationCode](nil), nil).AnyTimes()
	backend.EXPECT().TotalSupply(gomock.Any(), gomock.Any()).Return(models.Ok[uint64, models.OperationCode](0), nil).AnyTimes()
	backend.EXPECT().SupplyCap(gomock.Any(), gomock.Any()).Return(models.Ok[*uint64, models.OperationCode](nil), nil).AnyTimes()
	backend.EXPECT().MaxQueryBatchSize(gomock.Any(), gomock.Any()).Return(models.Ok[*uint64, models.OperationCode](nil), nil).AnyTimes()
	backend.EXPECT().MaxUpdateBatchSize(gomock.Any(), gomock.Any()).Return(models.Ok[*uint64, models.OperationCode](nil), nil).AnyTimes()
	backend.EXPECT().MaxTakeValue(gomock.Any(), gomock.Any()).Return(models.Ok[*uint64, models.OperationCode](nil), nil).AnyTimes()
	backend.EXPECT().MaxMemoSize(gomock.Any(), gomock.Any()).Return(models.Ok[*uint64, models.OperationCode](nil), nil).AnyTimes()
	backend.EXPECT().AtomicBatchTransfers(gomock.Any(), gomock.Any()).Return(models.Ok[*bool, models.OperationCode](nil), nil).AnyTimes()

	_, err := svc.CollectionInfo(context.Background(), testCollection)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReplicaUnavailable)
	assert.Contains(t, err.Error(), canister.MethodSymbol)
}

// ── revision selection ───────────────────────────────────────────────────────

func TestNewDappService_SelectsRevision(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := mock.NewMockAgent(ctrl)
	factory := mock.NewMockFactory(ctrl)

	v1, err := NewDappService(config.RevisionV1, agent, models.CanisterPrincipal(2), factory, testSender, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.RevisionV1, v1.Revision())

	v2, err := NewDappService(config.RevisionV2, agent, models.CanisterPrincipal(2), factory, testSender, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.RevisionV2, v2.Revision())

	_, err = NewDappService("v9", agent, models.CanisterPrincipal(2), factory, testSender, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedByRevision)
}
