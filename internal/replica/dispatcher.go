package replica

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/metrics"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// Canister kinds, used as metric labels.
const (
	KindFactory = "factory"
	KindBackend = "backend"
	KindLedger  = "ledger"
)

// LedgerLookup reports whether id is a collection created by the factory.
// It returns store.ErrCollectionNotFound for unknown ids.
type LedgerLookup func(ctx context.Context, id models.Principal) error

type mounted struct {
	kind  string
	table Canister
}

// Dispatcher routes calls to canister method tables.
type Dispatcher struct {
	codec   codec.Codec
	metrics metrics.CallRecorder

	mu       sync.RWMutex
	canister map[string]mounted
	ledgers  *mounted
	lookup   LedgerLookup

	locksMu sync.Mutex
	locks   map[string]*sync.RWMutex

	logger *logger.Logger
}

// NewDispatcher creates an empty dispatcher. c encodes the argument and
// reply tuples of in-process calls.
func NewDispatcher(c codec.Codec, recorder metrics.CallRecorder, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		codec:    c,
		metrics:  recorder,
		canister: make(map[string]mounted),
		locks:    make(map[string]*sync.RWMutex),
		logger:   logger,
	}
}

// Register mounts table under the fixed canister id.
func (d *Dispatcher) Register(id models.Principal, kind string, table Canister) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.canister[id.String()] = mounted{kind: kind, table: table}
}

// RegisterLedgers mounts the table serving every collection. lookup decides
// which ids are collections.
func (d *Dispatcher) RegisterLedgers(table Canister, lookup LedgerLookup) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ledgers = &mounted{kind: KindLedger, table: table}
	d.lookup = lookup
}

// Dispatch executes env on behalf of caller and returns the reply. arg is
// decoded with c, the codec the envelope arrived in; the reply tuple is
// encoded with it too.
func (d *Dispatcher) Dispatch(ctx context.Context, c codec.Codec, requestType string, env models.CallEnvelope, caller models.Principal) models.CallReply {
	started := time.Now()
	log := d.callLogger(ctx, env)
	ctx = log.WithContext(ctx)

	kind, result := d.execute(ctx, c, requestType, env, caller)

	outcome := metrics.OutcomeReplied
	if result.Status == models.StatusRejected {
		outcome = metrics.OutcomeRejected
		log.Debug().
			Str("caller", caller.String()).
			Str("reject_code", result.RejectCode.String()).
			Str("error_code", result.ErrorCode).
			Msg(result.RejectMessage)
	}
	d.metrics.RecordCall(kind, env.MethodName, outcome, time.Since(started))
	return result
}

func (d *Dispatcher) execute(ctx context.Context, c codec.Codec, requestType string, env models.CallEnvelope, caller models.Principal) (string, models.CallReply) {
	target, err := d.resolve(ctx, env.CanisterID)
	if err != nil {
		return "unknown", rejection(err)
	}

	method, ok := target.table[env.MethodName]
	if !ok {
		return target.kind, rejection(fmt.Errorf("%w: %s", ErrMethodNotFound, env.MethodName))
	}

	switch requestType {
	case models.RequestTypeQuery:
		if method.Update {
			return target.kind, rejection(ErrQueryToUpdateMethod)
		}
	case models.RequestTypeCall:
	default:
		return target.kind, rejection(fmt.Errorf("%w: %q", ErrUnknownRequestType, requestType))
	}

	lock := d.lockFor(env.CanisterID)
	if method.Update {
		lock.Lock()
		defer lock.Unlock()
	} else {
		lock.RLock()
		defer lock.RUnlock()
	}

	call := &Call{
		Caller:   caller,
		Canister: env.CanisterID,
		Method:   env.MethodName,
		arg:      env.Arg,
		codec:    c,
	}
	results, err := method.Handle(ctx, call)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("call failed")
		return target.kind, rejection(err)
	}

	arg, err := c.EncodeTuple(results...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("encode reply")
		return target.kind, rejection(err)
	}
	return target.kind, models.Replied(arg)
}

func (d *Dispatcher) resolve(ctx context.Context, id models.Principal) (mounted, error) {
	d.mu.RLock()
	target, ok := d.canister[id.String()]
	ledgers, lookup := d.ledgers, d.lookup
	d.mu.RUnlock()

	if ok {
		return target, nil
	}
	if ledgers == nil {
		return mounted{}, fmt.Errorf("%w: %s", ErrCanisterNotFound, id)
	}
	if err := lookup(ctx, id); err != nil {
		return mounted{}, err
	}
	return *ledgers, nil
}

// lockFor returns the lock of canister id. Locks are never released; the
// number of canisters only grows with the factory counter.
func (d *Dispatcher) lockFor(id models.Principal) *sync.RWMutex {
	d.locksMu.Lock()
	defer d.locksMu.Unlock()

	key := id.String()
	lock, ok := d.locks[key]
	if !ok {
		lock = &sync.RWMutex{}
		d.locks[key] = lock
	}
	return lock
}

// callLogger prefers the request logger carried by ctx over the dispatcher
// logger.
func (d *Dispatcher) callLogger(ctx context.Context, env models.CallEnvelope) *logger.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return (&logger.Logger{Logger: *l}).ForCall(env.CanisterID.String(), env.MethodName)
	}
	return d.logger.ForCall(env.CanisterID.String(), env.MethodName)
}
