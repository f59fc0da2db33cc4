package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// Field names accepted by [RequestValidator.Validate] to restrict validation
// to part of a value.
const (
	FieldOwner      = "owner"
	FieldSubaccount = "subaccount"

	FieldGroupName    = "group_name"
	FieldGroupMembers = "group_members"
	FieldGroupLeader  = "group_leader"

	FieldMemberName     = "name"
	FieldMemberIdentity = "internet_identity"

	FieldMetadata = "metadata"

	FieldPublicKey = "public_key"
	FieldSignature = "signature"
	FieldTimestamp = "timestamp"

	FieldBatchSizes    = "batch_sizes"
	FieldTakeValues    = "take_values"
	FieldSupplyCap     = "supply_cap"
	FieldLedgerWindows = "ledger_windows"

	FieldTokenID   = "token_id"
	FieldRecipient = "to"
)

// RequestValidator checks the structure of canister arguments before they
// reach a service. It does not look at stored state.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(value, fields...)
	case *models.Account:
		return v.validateAccount(*value, fields...)

	case models.Member:
		return v.validateMember(value, fields...)
	case models.Group:
		return v.validateGroup(value, fields...)
	case *models.Group:
		return v.validateGroup(*value, fields...)

	case models.Event:
		return v.validateEvent(value, fields...)

	case models.DelegationRequest:
		return v.validateDelegationRequest(value, fields...)
	case *models.DelegationRequest:
		return v.validateDelegationRequest(*value, fields...)

	case models.MintArg:
		return v.validateTokenArg(value.TokenID, value.To, fields...)
	case models.TransferArg:
		return v.validateTokenArg(value.TokenID, value.To, fields...)

	case models.CollectionArg:
		return v.validateCollectionArg(value, fields...)
	case *models.CollectionArg:
		return v.validateCollectionArg(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateAccount(account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubaccount}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if account.Owner.IsAnonymous() {
				return ErrAnonymousOwner
			}
		case FieldSubaccount:
			if n := len(account.Subaccount); n != 0 && n != models.SubaccountLength {
				return ErrInvalidSubaccount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateMember(member models.Member, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMemberName, FieldMemberIdentity}
	}

	for _, f := range fields {
		switch f {
		case FieldMemberName:
			if member.Name == "" {
				return ErrEmptyMemberName
			}
		case FieldMemberIdentity:
			if member.InternetIdentity.IsAnonymous() {
				return ErrAnonymousOwner
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateGroup(group models.Group, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGroupName, FieldGroupMembers, FieldGroupLeader}
	}

	for _, f := range fields {
		switch f {
		case FieldGroupName:
			if group.GroupName == "" {
				return ErrEmptyGroupName
			}
		case FieldGroupMembers:
			for i, member := range group.GroupMembers {
				if err := v.validateMember(member, FieldMemberIdentity); err != nil {
					return fmt.Errorf("member %d: %w", i, err)
				}
			}
		case FieldGroupLeader:
			if group.GroupLeader == nil {
				continue
			}
			if err := v.validateAccount(*group.GroupLeader); err != nil {
				return fmt.Errorf("group leader: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEvent(event models.Event, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMetadata}
	}

	for _, f := range fields {
		switch f {
		case FieldMetadata:
			if !event.Metadata.IsValid() {
				return ErrInvalidMetadata
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDelegationRequest(req models.DelegationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicKey, FieldSignature, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldPublicKey:
			if len(req.PublicKey) == 0 {
				return ErrEmptyPublicKey
			}
		case FieldSignature:
			if len(req.Signature) == 0 {
				return ErrEmptySignature
			}
		case FieldTimestamp:
			if req.Timestamp <= 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCollectionArg(arg models.CollectionArg, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBatchSizes, FieldTakeValues, FieldSupplyCap, FieldLedgerWindows}
	}

	for _, f := range fields {
		switch f {
		case FieldBatchSizes:
			for _, size := range []*uint64{arg.MaxQueryBatchSize, arg.MaxUpdateBatchSize, arg.MaxTakeValue} {
				if size != nil && *size == 0 {
					return ErrZeroBatchSize
				}
			}
		case FieldTakeValues:
			if arg.DefaultTakeValue == nil || arg.MaxTakeValue == nil {
				continue
			}
			if *arg.DefaultTakeValue > *arg.MaxTakeValue {
				return ErrTakeAboveMax
			}
		case FieldSupplyCap:
			if arg.SupplyCap != nil && *arg.SupplyCap == 0 {
				return ErrSupplyCapBelowOneToken
			}
		case FieldLedgerWindows:
			for _, nanos := range []*uint64{arg.TxWindowNanos, arg.PermittedDriftNanos} {
				if nanos != nil && *nanos > uint64(models.MaxLedgerWindow) {
					return ErrLedgerWindowTooLarge
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTokenArg checks the token id and recipient shared by mint and
// transfer entries.
func (v *RequestValidator) validateTokenArg(tokenID uint64, to models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTokenID, FieldRecipient}
	}

	for _, f := range fields {
		switch f {
		case FieldTokenID:
			if tokenID > models.MaxTokenID {
				return ErrTokenIDOutOfRange
			}
		case FieldRecipient:
			if err := v.validateAccount(to); err != nil {
				return fmt.Errorf("recipient: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
