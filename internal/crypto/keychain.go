// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/icrc7-dapp/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  chacha20poly1305.KeySize,
	}
}

// GenerateIdentity implements [KeyChain].
func (k *keyChain) GenerateIdentity() (*Identity, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return newIdentity(priv)
}

// Seal implements [KeyChain]. The blob layout is XChaCha20-Poly1305 over the
// 32-byte seed with a random 24-byte nonce and the principal text as
// additional data.
func (k *keyChain) Seal(identity *Identity, passphrase string) (*models.SealedIdentity, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(k.deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	principal := identity.Principal().String()
	return &models.SealedIdentity{
		Version:    models.IdentityFileVersion,
		Principal:  principal,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, identity.seed(), []byte(principal)),
	}, nil
}

// Open implements [KeyChain].
func (k *keyChain) Open(sealed *models.SealedIdentity, passphrase string) (*Identity, error) {
	if sealed.Version != models.IdentityFileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedIdentityVersion, sealed.Version)
	}

	aead, err := chacha20poly1305.NewX(k.deriveKey(passphrase, sealed.Salt))
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}
	if len(sealed.Nonce) != aead.NonceSize() {
		return nil, ErrIdentityDecryption
	}

	seed, err := aead.Open(nil, sealed.Nonce, sealed.Ciphertext, []byte(sealed.Principal))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIdentityDecryption, err)
	}

	identity, err := NewIdentityFromSeed(seed)
	if err != nil {
		return nil, err
	}
	if identity.Principal().String() != sealed.Principal {
		return nil, ErrIdentityMismatch
	}

	return identity, nil
}

func (k *keyChain) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}
