package replica

import (
	"errors"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var (
	ErrCanisterNotFound    = errors.New("canister not found")
	ErrMethodNotFound      = errors.New("method not found")
	ErrQueryToUpdateMethod = errors.New("update method called as a query")
	ErrInvalidArgument     = errors.New("invalid argument tuple")
	ErrUnknownRequestType  = errors.New("unknown request type")
	ErrUnknownRevision     = errors.New("unknown backend interface revision")
)

// rejection maps a handler error to the reject sent to the caller.
func rejection(err error) models.CallReply {
	switch {
	case errors.Is(err, ErrCanisterNotFound), errors.Is(err, store.ErrCollectionNotFound):
		return models.Rejected(models.RejectDestinationInvalid, app.ErrorCodeCanisterNotFound, app.MsgCanisterNotFound)
	case errors.Is(err, ErrMethodNotFound):
		return models.Rejected(models.RejectDestinationInvalid, app.ErrorCodeMethodNotFound, app.MsgMethodNotFound)
	case errors.Is(err, ErrQueryToUpdateMethod), errors.Is(err, ErrUnknownRequestType):
		return models.Rejected(models.RejectCanisterReject, app.ErrorCodeCanisterReject, app.MsgQueryToUpdateMethod)
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, service.ErrInvalidDataProvided):
		return models.Rejected(models.RejectCanisterError, app.ErrorCodeInvalidArgument, app.MsgInvalidDataProvided+": "+err.Error())
	case errors.Is(err, service.ErrAnonymousCaller):
		return models.Rejected(models.RejectCanisterReject, app.ErrorCodeCanisterReject, app.MsgCallerIsAnonymous)
	case errors.Is(err, service.ErrNotCollectionOwner):
		return models.Rejected(models.RejectCanisterReject, app.ErrorCodeCanisterReject, app.MsgNotCollectionOwner)
	case errors.Is(err, service.ErrExceedsMaxTakeValue):
		return models.Rejected(models.RejectCanisterError, app.ErrorCodeCanisterError, app.MsgExceedsMaxTakeValue)
	case errors.Is(err, service.ErrExceedsMaxQueryBatchSize):
		return models.Rejected(models.RejectCanisterError, app.ErrorCodeCanisterError, app.MsgExceedsMaxQueryBatchSize)
	}

	var rejectErr *adapter.RejectError
	if errors.As(err, &rejectErr) {
		return models.Rejected(models.RejectCanisterError, app.ErrorCodeCanisterError, rejectErr.Error())
	}
	return models.Rejected(models.RejectCanisterError, app.ErrorCodeCanisterError, app.MsgInternalServerError)
}
