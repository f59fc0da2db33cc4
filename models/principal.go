// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Principal is an opaque identity reference used to authenticate callers and
// denote ownership of canisters, collections and tokens.
//
// The zero value is the management canister principal ("aaaaa-aa").
// Principal is comparable and can be used as a map key.
type Principal struct {
	raw string
}

const (
	maxPrincipalLength = 29

	selfAuthenticatingSuffix = 0x02
	anonymousSuffix          = 0x04
	canisterSuffix           = 0x01

	// canisterIDBase is the first id of the local canister range; ids are
	// allocated as (base + n) ‖ 0x01 0x01.
	canisterIDBase uint64 = 0x8000000000100000
)

var (
	// ErrInvalidPrincipal is returned when a textual principal cannot be decoded.
	ErrInvalidPrincipal = errors.New("invalid principal")
	// ErrPrincipalChecksum is returned when the crc32 prefix does not match.
	ErrPrincipalChecksum = errors.New("principal checksum mismatch")

	principalEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)
)

// AnonymousPrincipal is the identity of unauthenticated callers ("2vxsx-fae").
var AnonymousPrincipal = Principal{raw: string([]byte{anonymousSuffix})}

// ManagementPrincipal is the management canister ("aaaaa-aa").
var ManagementPrincipal = Principal{}

// PrincipalFromBytes wraps raw principal bytes.
func PrincipalFromBytes(b []byte) (Principal, error) {
	if len(b) > maxPrincipalLength {
		return Principal{}, ErrInvalidPrincipal
	}
	return Principal{raw: string(b)}, nil
}

// SelfAuthenticatingPrincipal derives the principal of a key pair from its
// DER-encoded public key: sha224(der) ‖ 0x02.
func SelfAuthenticatingPrincipal(publicKeyDER []byte) Principal {
	sum := sha256.Sum224(publicKeyDER)
	return Principal{raw: string(append(sum[:], selfAuthenticatingSuffix))}
}

// CanisterPrincipal returns the n-th canister id of the local id range.
// CanisterPrincipal(1) is "bkyz2-fmaaa-aaaaa-qaaaq-cai".
func CanisterPrincipal(n uint64) Principal {
	b := make([]byte, 10)
	binary.BigEndian.PutUint64(b, canisterIDBase+n)
	b[8], b[9] = canisterSuffix, canisterSuffix
	return Principal{raw: string(b)}
}

// ParsePrincipal decodes the textual representation of a principal and
// verifies its checksum.
func ParsePrincipal(s string) (Principal, error) {
	compact := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if compact == "" {
		return Principal{}, ErrInvalidPrincipal
	}

	decoded, err := principalEncoding.DecodeString(compact)
	if err != nil || len(decoded) < 4 {
		return Principal{}, ErrInvalidPrincipal
	}

	p, err := PrincipalFromBytes(decoded[4:])
	if err != nil {
		return Principal{}, err
	}
	if binary.BigEndian.Uint32(decoded[:4]) != crc32.ChecksumIEEE(decoded[4:]) {
		return Principal{}, ErrPrincipalChecksum
	}
	if p.String() != strings.ToLower(strings.TrimSpace(s)) {
		return Principal{}, ErrInvalidPrincipal
	}

	return p, nil
}

// MustParsePrincipal is like ParsePrincipal but panics on error.
// Intended for constants and tests.
func MustParsePrincipal(s string) Principal {
	p, err := ParsePrincipal(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Bytes returns a copy of the raw principal bytes.
func (p Principal) Bytes() []byte {
	return []byte(p.raw)
}

// IsAnonymous reports whether p is the anonymous principal.
func (p Principal) IsAnonymous() bool {
	return p == AnonymousPrincipal
}

// String returns the dash-grouped base32 form, e.g. "2vxsx-fae".
func (p Principal) String() string {
	buf := make([]byte, 4, 4+len(p.raw))
	binary.BigEndian.PutUint32(buf, crc32.ChecksumIEEE([]byte(p.raw)))
	buf = append(buf, p.raw...)

	encoded := strings.ToLower(principalEncoding.EncodeToString(buf))

	var sb strings.Builder
	for i := 0; i < len(encoded); i += 5 {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(encoded[i:min(i+5, len(encoded))])
	}
	return sb.String()
}

func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Principal) UnmarshalText(text []byte) error {
	parsed, err := ParsePrincipal(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Principal) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.String())
}

func (p *Principal) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
