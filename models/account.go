package models

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// SubaccountLength is the fixed size of an ICRC subaccount.
const SubaccountLength = 32

// Account identifies a token holder: an owner principal plus an optional
// 32-byte subaccount. A nil subaccount and an all-zero subaccount denote the
// same (default) account.
type Account struct {
	Owner      Principal `json:"owner"`
	Subaccount []byte    `json:"subaccount,omitempty"`
}

// NewAccount returns the default account of owner.
func NewAccount(owner Principal) Account {
	return Account{Owner: owner}
}

// Key returns a canonical string usable as a map key or a database column.
func (a Account) Key() string {
	if a.isDefaultSubaccount() {
		return a.Owner.String()
	}
	return a.Owner.String() + "." + hex.EncodeToString(a.Subaccount)
}

// Equal reports whether two accounts denote the same holder.
func (a Account) Equal(other Account) bool {
	return a.Key() == other.Key()
}

// ParseAccountKey is the inverse of [Account.Key].
func ParseAccountKey(key string) (Account, error) {
	ownerText, subText, hasSub := strings.Cut(key, ".")

	owner, err := ParsePrincipal(ownerText)
	if err != nil {
		return Account{}, fmt.Errorf("parse account owner: %w", err)
	}
	if !hasSub {
		return Account{Owner: owner}, nil
	}

	sub, err := hex.DecodeString(subText)
	if err != nil || len(sub) != SubaccountLength {
		return Account{}, fmt.Errorf("parse account subaccount %q: %w", subText, ErrInvalidSubaccount)
	}
	return Account{Owner: owner, Subaccount: sub}, nil
}

// ErrInvalidSubaccount is returned for subaccounts that are not 32 bytes long.
var ErrInvalidSubaccount = fmt.Errorf("subaccount must be %d bytes", SubaccountLength)

func (a Account) String() string {
	return a.Key()
}

func (a Account) isDefaultSubaccount() bool {
	for _, b := range a.Subaccount {
		if b != 0 {
			return false
		}
	}
	return true
}
