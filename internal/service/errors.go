package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrNotLoggedIn           = errors.New("not logged in")
	ErrAnonymousCaller       = errors.New("caller is anonymous")
	ErrUnsupportedByRevision = errors.New("operation is not available in this interface revision")
	ErrEmptyVariant          = errors.New("reply carries no variant")
	ErrReplicaUnavailable    = errors.New("replica is unavailable")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidDelegation       = errors.New("invalid delegation request")
	ErrDelegationTooOld        = errors.New("delegation challenge is outside the permitted window")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("interface revision is not specified")
	ErrNotCollectionOwner    = errors.New("caller does not own the collection")
	ErrCollectionMinting     = errors.New("collection could not be created")
)

// Ledger traps. The replica turns them into canister errors.
var (
	ErrExceedsMaxTakeValue       = errors.New("take exceeds the max take value")
	ErrExceedsMaxQueryBatchSize  = errors.New("query batch exceeds the max query batch size")
	ErrTransferToUnknownToken    = errors.New("token disappeared during transfer")
	ErrCommemorativeMintRejected = errors.New("commemorative mint rejected")
)

// Backend outcomes that both interface revisions encode.
var (
	ErrDuplicateGroup = errors.New("duplicate group name")
	ErrGroupNotFound  = errors.New("group not found")
	ErrEventNotFound  = errors.New("event not found")
)

// MintingError reports which member's commemorative token could not be
// minted. Minted holds the tokens issued before the failure.
type MintingError struct {
	Member string
	Minted []uint64
	Err    error
}

func (e *MintingError) Error() string {
	return "error minting token for " + e.Member + ": " + e.Err.Error()
}

func (e *MintingError) Unwrap() error {
	return e.Err
}
