// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/app"
)

// mapAgentError translates a transport or reject error into a service
// business error. The original error stays in the chain.
func mapAgentError(err error) error {
	if err == nil {
		return nil
	}

	var rejectErr *adapter.RejectError
	if errors.As(err, &rejectErr) {
		if rejectErr.Message == app.MsgCallerIsAnonymous {
			return fmt.Errorf("%w: %w", ErrAnonymousCaller, err)
		}
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrReplicaUnavailable, err)
	}

	return err
}
