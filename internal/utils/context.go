// Package utils provides general-purpose helper utilities used by the dapp
// client and the local replica: context keys, delegation tokens, HTTP
// response writing, the resty client wrapper and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authentication middleware
// stores the caller principal.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the caller principal.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the caller principal from the context.
//
// ok is false when no principal was attached; callers treat that as the
// anonymous principal.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// CallerFromContext returns the caller principal, or the anonymous principal
// when the request carried no delegation.
func CallerFromContext(ctx context.Context) models.Principal {
	if p, ok := GetPrincipalFromContext(ctx); ok {
		return p
	}
	return models.AnonymousPrincipal
}
