package replica

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// LocalAgent implements [adapter.Agent] on top of a dispatcher. Canisters
// use it for inter-canister calls; the sender is the calling canister, or
// the original caller when a call is forwarded on its behalf.
type LocalAgent struct {
	dispatcher *Dispatcher
	sender     models.Principal
}

// Agent returns an agent sending calls as sender.
func (d *Dispatcher) Agent(sender models.Principal) *LocalAgent {
	return &LocalAgent{dispatcher: d, sender: sender}
}

// AgentFactory adapts [Dispatcher.Agent] for service wiring.
func (d *Dispatcher) AgentFactory() service.AgentFactory {
	return func(sender models.Principal) adapter.Agent {
		return d.Agent(sender)
	}
}

func (a *LocalAgent) Sender() models.Principal {
	return a.sender
}

func (a *LocalAgent) Query(ctx context.Context, canister models.Principal, method string, args []any, results ...any) error {
	return a.send(ctx, models.RequestTypeQuery, canister, method, args, results)
}

func (a *LocalAgent) Call(ctx context.Context, canister models.Principal, method string, args []any, results ...any) error {
	return a.send(ctx, models.RequestTypeCall, canister, method, args, results)
}

func (a *LocalAgent) send(ctx context.Context, requestType string, canister models.Principal, method string, args, results []any) error {
	c := a.dispatcher.codec

	arg, err := c.EncodeTuple(args...)
	if err != nil {
		return fmt.Errorf("encode %s arguments: %w", method, err)
	}

	env := models.CallEnvelope{
		RequestType: requestType,
		CanisterID:  canister,
		MethodName:  method,
		Arg:         arg,
		Sender:      a.sender,
	}
	reply := a.dispatcher.Dispatch(ctx, c, requestType, env, a.sender)

	if reply.Status == models.StatusRejected {
		return &adapter.RejectError{
			Canister:  canister,
			Method:    method,
			Code:      reply.RejectCode,
			ErrorCode: reply.ErrorCode,
			Message:   reply.RejectMessage,
		}
	}
	if reply.Reply == nil {
		return fmt.Errorf("%w: replied without payload", adapter.ErrUnexpectedReply)
	}
	if err = c.DecodeTuple(reply.Reply.Arg, results...); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// Status reports the in-process replica as healthy.
func (a *LocalAgent) Status(context.Context) (models.ReplicaStatus, error) {
	return models.ReplicaStatus{ReplicaHealthStatus: service.ReplicaHealthy}, nil
}
