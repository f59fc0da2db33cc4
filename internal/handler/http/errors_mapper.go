package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	ErrInvalidCanisterID:   http.StatusBadRequest,
	ErrMalformedEnvelope:   http.StatusBadRequest,
	ErrEnvelopeTooLarge:    http.StatusRequestEntityTooLarge,
	ErrRequestTypeMismatch: http.StatusBadRequest,
	ErrCanisterMismatch:    http.StatusBadRequest,
	ErrSenderMismatch:      http.StatusForbidden,
	ErrIngressExpired:      http.StatusBadRequest,

	codec.ErrUnknownCodec: http.StatusUnsupportedMediaType,
	codec.ErrTupleTooLong: http.StatusBadRequest,

	service.ErrAnonymousCaller:         http.StatusForbidden,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidDelegation:       http.StatusBadRequest,
	service.ErrDelegationTooOld:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Server-side failures
// are reported with the generic status text so internals do not leak.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	http.Error(w, message, status)
	return status
}
