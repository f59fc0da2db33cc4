package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSubaccount      = errors.New("subaccount must be empty or 32 bytes")
	ErrAnonymousOwner         = errors.New("account owner is anonymous")
	ErrEmptyGroupName         = errors.New("group name is required")
	ErrEmptyMemberName        = errors.New("member name is required")
	ErrInvalidMetadata        = errors.New("metadata must hold exactly one value")
	ErrEmptyPublicKey         = errors.New("public key is required")
	ErrEmptySignature         = errors.New("signature is required")
	ErrInvalidTimestamp       = errors.New("invalid timestamp")
	ErrZeroBatchSize          = errors.New("batch sizes must be positive")
	ErrTakeAboveMax           = errors.New("default take value exceeds max take value")
	ErrSupplyCapBelowOneToken = errors.New("supply cap must allow at least one token")
	ErrLedgerWindowTooLarge   = errors.New("tx window and permitted drift must not exceed one year")
	ErrTokenIDOutOfRange      = errors.New("token id exceeds the largest supported id")
)
