package crypto

import "errors"

var (
	ErrIdentityDecryption         = errors.New("identity decryption failed")
	ErrUnsupportedIdentityVersion = errors.New("unsupported identity file version")
	ErrIdentityMismatch           = errors.New("identity does not match the recorded principal")
	ErrInvalidPublicKey           = errors.New("invalid public key")
	ErrInvalidSignature           = errors.New("invalid signature")
)
