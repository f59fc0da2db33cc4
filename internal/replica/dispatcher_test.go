package replica

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/metrics"
	"github.com/MKhiriev/icrc7-dapp/internal/mock"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var (
	factoryID    = models.CanisterPrincipal(1)
	backendID    = models.CanisterPrincipal(2)
	collectionID = models.CanisterPrincipal(4)
	unknownID    = models.CanisterPrincipal(9)

	alice = models.SelfAuthenticatingPrincipal([]byte("alice"))
	bob   = models.SelfAuthenticatingPrincipal([]byte("bob"))
)

type recordedCall struct {
	kind, method, outcome string
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeRecorder) RecordCall(kind, method, outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{kind: kind, method: method, outcome: outcome})
}

func (f *fakeRecorder) RecordRateLimited()   {}
func (f *fakeRecorder) RecordArchived(int64) {}

type testReplica struct {
	d        *Dispatcher
	ledger   *mock.MockLedgerService
	factory  *mock.MockFactoryService
	backend  *mock.MockBackendService
	recorder *fakeRecorder
}

func newTestReplica(t *testing.T, revision string) *testReplica {
	t.Helper()
	ctrl := gomock.NewController(t)
	r := &testReplica{
		ledger:   mock.NewMockLedgerService(ctrl),
		factory:  mock.NewMockFactoryService(ctrl),
		backend:  mock.NewMockBackendService(ctrl),
		recorder: &fakeRecorder{},
	}
	r.d = NewDispatcher(codec.NewCBOR(), r.recorder, logger.Nop())

	svcs := &service.Services{
		CanisterIDs:    service.CanisterIDs{Backend: backendID, Factory: factoryID},
		LedgerService:  r.ledger,
		FactoryService: r.factory,
		BackendService: r.backend,
	}
	require.NoError(t, r.d.Mount(svcs, revision))

	r.ledger.EXPECT().Settings(gomock.Any(), unknownID).
		Return(models.CollectionSettings{}, fmt.Errorf("load collection: %w", store.ErrCollectionNotFound)).
		AnyTimes()
	return r
}

// knownCollection makes collectionID resolvable with settings.
func (r *testReplica) knownCollection(settings models.CollectionSettings) {
	r.ledger.EXPECT().Settings(gomock.Any(), collectionID).Return(settings, nil).AnyTimes()
}

func testSettings() models.CollectionSettings {
	description := "hikes"
	return models.CollectionArg{Symbol: "TST", Name: "Test", Description: &description}.
		Resolve(collectionID, models.NewAccount(alice))
}

func requireReject(t *testing.T, err error, code models.RejectCode, errorCode string) *adapter.RejectError {
	t.Helper()
	var rejectErr *adapter.RejectError
	require.True(t, errors.As(err, &rejectErr), "expected a reject, got %v", err)
	assert.Equal(t, code, rejectErr.Code)
	assert.Equal(t, errorCode, rejectErr.ErrorCode)
	return rejectErr
}

func TestDispatcher_RoutesLedgerCallsAndRecords(t *testing.T) {
	r := newTestReplica(t, config.RevisionV1)
	r.knownCollection(testSettings())

	symbol, err := canister.NewLedger(r.d.Agent(alice), collectionID).Symbol(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "TST", symbol)
	assert.Equal(t, []recordedCall{{kind: KindLedger, method: canister.MethodSymbol, outcome: metrics.OutcomeReplied}}, r.recorder.calls)
}

func TestDispatcher_UnknownCanister(t *testing.T) {
	r := newTestReplica(t, config.RevisionV1)

	_, err := canister.NewLedger(r.d.Agent(alice), unknownID).Symbol(context.Background())

	rejectErr := requireReject(t, err, models.RejectDestinationInvalid, app.ErrorCodeCanisterNotFound)
	assert.Equal(t, app.MsgCanisterNotFound, rejectErr.Message)
	require.Len(t, r.recorder.calls, 1)
	assert.Equal(t, metrics.OutcomeRejected, r.recorder.calls[0].outcome)
}

func TestDispatcher_UnknownMethod(t *testing.T) {
	r := newTestReplica(t, config.RevisionV1)

	err := r.d.Agent(alice).Query(context.Background(), factoryID, "ext_metadata", nil)

	requireReject(t, err, models.RejectDestinationInvalid, app.ErrorCodeMethodNotFound)
}

func TestDispatcher_QueryToUpdateMethod(t *testing.T) {
	r := newTestReplica(t, config.RevisionV1)
	r.knownCollection(testSettings())

	err := r.d.Agent(alice).Query(context.Background(), collectionID, canister.MethodMint, []any{models.MintArg{}})

	rejectErr := requireReject(t, err, models.RejectCanisterReject, app.ErrorCodeCanisterReject)
	assert.Equal(t, app.MsgQueryToUpdateMethod, rejectErr.Message)
}

func TestDispatcher_InvalidArguments(t *testing.T) {
	r := newTestReplica(t, config.RevisionV1)
	r.knownCollection(testSettings())

	var out []*models.TokenMetadata
	err := r.d.Agent(alice).Query(context.Background(), collectionID, canister.MethodTokenMetadata, []any{"not ids"}, &out)

	requireReject(t, err, models.RejectCanisterError, app.ErrorCodeInvalidArgument)
}

func TestDispatcher_UnknownRequestType(t *testing.T) {
	r := newTestReplica(t, config.RevisionV1)

	reply := r.d.Dispatch(context.Background(), codec.NewCBOR(), "read_state", models.CallEnvelope{
		CanisterID: factoryID,
		MethodName: canister.MethodShowCollections,
	}, alice)

	assert.Equal(t, models.StatusRejected, reply.Status)
	assert.Equal(t, models.RejectCanisterReject, reply.RejectCode)
}

func TestDispatcher_UnexpectedErrorIsCanisterError(t *testing.T) {
	r := newTestReplica(t, config.RevisionV1)
	r.factory.EXPECT().ShowCollections(gomock.Any()).Return(nil, errors.New("database is locked"))

	_, err := canister.NewFactory(r.d.Agent(alice), factoryID).ShowCollections(context.Background())

	rejectErr := requireReject(t, err, models.RejectCanisterError, app.ErrorCodeCanisterError)
	assert.Equal(t, app.MsgInternalServerError, rejectErr.Message)
}

func TestDispatcher_UnknownRevision(t *testing.T) {
	d := NewDispatcher(codec.NewJSON(), metrics.Nop(), logger.Nop())

	err := d.Mount(&service.Services{}, "v3")

	require.ErrorIs(t, err, ErrUnknownRevision)
}

func TestLocalAgent_Status(t *testing.T) {
	d := NewDispatcher(codec.NewCBOR(), metrics.Nop(), logger.Nop())
	agent := d.Agent(alice)

	status, err := agent.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.ReplicaHealthy, status.ReplicaHealthStatus)
	assert.Equal(t, alice, agent.Sender())
}

func TestDispatcher_SerialisesUpdatesPerCanister(t *testing.T) {
	d := NewDispatcher(codec.NewCBOR(), metrics.Nop(), logger.Nop())

	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	d.Register(factoryID, KindFactory, Canister{
		"bump": update(func(ctx context.Context, call *Call) ([]any, error) {
			mu.Lock()
			running++
			peak = max(peak, running)
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			return nil, nil
		}),
	})

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Agent(alice).Call(context.Background(), factoryID, "bump", nil))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, peak)
}
