// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the replica that hosts the dapp canisters.
//
// The primary abstraction is [Agent], which sends query and update calls to a
// canister and decodes the reply tuple. The package ships an HTTP
// implementation ([NewHTTPAgent]) speaking the replica wire protocol, an
// [IdentityProvider] that exchanges a signed challenge for a delegation, and
// a gRPC health client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Canister-level rejections surface as [*RejectError].
package adapter

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Agent sends calls to canisters. args is the argument tuple; results are
// pointers the reply tuple is decoded into, element by element.
type Agent interface {
	// Query performs a read-only call.
	Query(ctx context.Context, canister models.Principal, method string, args []any, results ...any) error

	// Call performs an update call.
	Call(ctx context.Context, canister models.Principal, method string, args []any, results ...any) error

	// Status fetches replica health and build information.
	Status(ctx context.Context) (models.ReplicaStatus, error)

	// Sender returns the principal calls are sent as.
	Sender() models.Principal
}

// IdentityProvider issues delegations for signed challenges.
type IdentityProvider interface {
	Delegate(ctx context.Context, req models.DelegationRequest) (models.Delegation, error)
}

// Signer is the key pair a delegation is requested for.
type Signer interface {
	Principal() models.Principal
	PublicKeyDER() []byte
	Sign(message []byte) []byte
}

// HealthChecker queries the replica gRPC health service.
type HealthChecker interface {
	Check(ctx context.Context, service string) (string, error)
	Close() error
}
