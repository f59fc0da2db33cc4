// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package replica hosts the dapp canisters in-process.
//
// A [Dispatcher] routes call envelopes to method tables, one per canister:
// the factory, the backend (in the configured interface revision) and a
// shared ledger table that serves every collection the factory has created.
// Calls to the same canister are serialised, queries may run in parallel.
// Inter-canister calls go through a [LocalAgent], which speaks the same
// envelope protocol as the HTTP agent without leaving the process.
package replica

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// Handler executes one canister method and returns the reply tuple.
type Handler func(ctx context.Context, call *Call) ([]any, error)

// Method is an exported canister method.
type Method struct {
	// Update marks methods that change state. They cannot be invoked
	// through the query endpoint.
	Update bool
	Handle Handler
}

// Canister is the method table of a canister.
type Canister map[string]Method

func query(h Handler) Method  { return Method{Handle: h} }
func update(h Handler) Method { return Method{Update: true, Handle: h} }

// Call is a single method invocation.
type Call struct {
	// Caller is the authenticated sender of the call.
	Caller   models.Principal
	Canister models.Principal
	Method   string

	arg   []byte
	codec codec.Codec
}

// Args decodes the argument tuple into dst.
func (c *Call) Args(dst ...any) error {
	if err := c.codec.DecodeTuple(c.arg, dst...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// reply builds a single-element reply tuple.
func reply(v any) []any {
	return []any{v}
}
