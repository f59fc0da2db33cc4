package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedReply is returned when the replica answers with an unknown
	// status or a replied status without a payload.
	ErrUnexpectedReply = errors.New("unexpected replica reply")

	// ErrEmptyProviderURL is returned when no identity provider is configured.
	ErrEmptyProviderURL = errors.New("identity provider url is empty")
)

// RejectError is a canister call the replica answered with a rejection.
type RejectError struct {
	Canister  models.Principal
	Method    string
	Code      models.RejectCode
	ErrorCode string
	Message   string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("call %s.%s rejected (%s %s): %s", e.Canister, e.Method, e.Code, e.ErrorCode, e.Message)
}

// IsReject reports whether err is a rejection with the given code.
func IsReject(err error, code models.RejectCode) bool {
	var rejectErr *RejectError
	return errors.As(err, &rejectErr) && rejectErr.Code == code
}
