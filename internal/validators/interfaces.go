// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks replica inputs before they reach storage:
// accounts, group subscriptions, token metadata, delegation requests and
// collection init args. Services receive a Validator and name the fields they
// care about, so one call can check only the owner of an account or only the
// leader of a group.
package validators

import "context"

// Validator checks v, or only the named fields of v when fields is not
// empty. Unsupported types yield ErrUnsupportedType and unknown field names
// ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
