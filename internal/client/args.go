package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/icrc7-dapp/models"
)

func parsePrincipal(text string) (models.Principal, error) {
	p, err := models.ParsePrincipal(text)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return p, nil
}

// parseAccount accepts "<principal>" or "<principal>.<hex subaccount>".
func parseAccount(text string) (models.Account, error) {
	account, err := models.ParseAccountKey(text)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return account, nil
}

func parseAccounts(texts []string) ([]models.Account, error) {
	accounts := make([]models.Account, 0, len(texts))
	for _, text := range texts {
		account, err := parseAccount(text)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func parseTokenIDs(texts []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(texts))
	for _, text := range texts {
		id, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token id %q is not a nat", ErrInvalidArguments, text)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseMembers reads name/principal pairs.
func parseMembers(pairs []string) ([]models.Member, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: members are given as <name> <principal> pairs", ErrInvalidArguments)
	}

	members := make([]models.Member, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		p, err := parsePrincipal(pairs[i+1])
		if err != nil {
			return nil, err
		}
		members = append(members, models.Member{Name: pairs[i], InternetIdentity: p})
	}
	return members, nil
}

// optionalUint64 is a flag that stays nil unless given.
type optionalUint64 struct {
	value *uint64
}

func (o *optionalUint64) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.FormatUint(*o.value, 10)
}

func (o *optionalUint64) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not a nat", s)
	}
	o.value = &v
	return nil
}

// optionalString is a flag that stays nil unless given.
type optionalString struct {
	value *string
}

func (o *optionalString) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return *o.value
}

func (o *optionalString) Set(s string) error {
	o.value = &s
	return nil
}

// optionalBool is a boolean flag that stays nil unless given.
type optionalBool struct {
	value *bool
}

func (o *optionalBool) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.FormatBool(*o.value)
}

func (o *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

func (o *optionalBool) IsBoolFlag() bool { return true }

// optionalNanos is a duration flag stored as nanoseconds.
type optionalNanos struct {
	value *uint64
}

func (o *optionalNanos) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return time.Duration(*o.value).String()
}

func (o *optionalNanos) Set(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("%q is negative", s)
	}
	n := uint64(d)
	o.value = &n
	return nil
}
