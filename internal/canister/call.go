package canister

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// query performs a query call whose reply tuple has a single element.
func query[T any](ctx context.Context, agent adapter.Agent, canister models.Principal, method string, args ...any) (T, error) {
	var out T
	if err := agent.Query(ctx, canister, method, tuple(args), &out); err != nil {
		return out, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

// update performs an update call whose reply tuple has a single element.
func update[T any](ctx context.Context, agent adapter.Agent, canister models.Principal, method string, args ...any) (T, error) {
	var out T
	if err := agent.Call(ctx, canister, method, tuple(args), &out); err != nil {
		return out, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

// updateUnit performs an update call with an empty reply tuple.
func updateUnit(ctx context.Context, agent adapter.Agent, canister models.Principal, method string, args ...any) error {
	if err := agent.Call(ctx, canister, method, tuple(args)); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func tuple(args []any) []any {
	if args == nil {
		return []any{}
	}
	return args
}
