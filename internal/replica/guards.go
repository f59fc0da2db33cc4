package replica

import (
	"context"
	"slices"

	"github.com/MKhiriev/icrc7-dapp/internal/service"
)

// guarded wraps every method of table, except the listed ones, with a check
// rejecting the anonymous principal.
func guarded(table Canister, except ...string) Canister {
	for name, method := range table {
		if slices.Contains(except, name) {
			continue
		}
		table[name] = Method{Update: method.Update, Handle: notAnonymous(method.Handle)}
	}
	return table
}

func notAnonymous(next Handler) Handler {
	return func(ctx context.Context, call *Call) ([]any, error) {
		if call.Caller.IsAnonymous() {
			return nil, service.ErrAnonymousCaller
		}
		return next(ctx, call)
	}
}
