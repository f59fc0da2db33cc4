package http

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrEmptyToken                 = errors.New("empty token")

	ErrInvalidCanisterID   = errors.New("invalid canister id")
	ErrMalformedEnvelope   = errors.New("malformed call envelope")
	ErrEnvelopeTooLarge    = errors.New("call envelope is too large")
	ErrRequestTypeMismatch = errors.New("request type does not match the endpoint")
	ErrCanisterMismatch    = errors.New("envelope canister does not match the path")
	ErrSenderMismatch      = errors.New("envelope sender does not match the delegation")
	ErrIngressExpired      = errors.New("ingress expiry has passed")
)
