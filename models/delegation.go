package models

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DelegationDomain prefixes the message a client signs to obtain a delegation.
const DelegationDomain = "icrc7-delegation"

// DelegationRequest asks the identity provider for a delegation. Signature is
// the ed25519 signature of [DelegationChallenge] over Timestamp.
type DelegationRequest struct {
	PublicKey []byte `json:"public_key"`
	Timestamp int64  `json:"timestamp"`
	Signature []byte `json:"signature"`
}

// Delegation is a signed bearer credential binding a principal to a session.
type Delegation struct {
	Token      string    `json:"delegation"`
	Principal  Principal `json:"principal"`
	Expiration time.Time `json:"expiration"`
}

// DelegationChallenge returns the bytes signed by the client:
// DelegationDomain ‖ big-endian unix-nano timestamp.
func DelegationChallenge(timestamp int64) []byte {
	msg := make([]byte, len(DelegationDomain)+8)
	copy(msg, DelegationDomain)
	binary.BigEndian.PutUint64(msg[len(DelegationDomain):], uint64(timestamp))
	return msg
}

// DelegationToken wraps the parsed JWT of a delegation.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set; the subject
// claim carries the textual principal.
type DelegationToken struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form.
	SignedString string `json:"-"`

	// Principal is the parsed subject claim.
	Principal Principal `json:"-"`
}

// GetPrincipal parses the subject claim into a principal.
func (t *DelegationToken) GetPrincipal() (Principal, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return Principal{}, fmt.Errorf("error extracting principal from token: %w", err)
	}

	p, err := ParsePrincipal(subject)
	if err != nil {
		return Principal{}, fmt.Errorf("error parsing principal from token subject: %w", err)
	}
	return p, nil
}

func (t *DelegationToken) String() string {
	return t.SignedString
}
