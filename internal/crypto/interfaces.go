package crypto

import "github.com/MKhiriev/icrc7-dapp/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain creates and protects the client identity key pair.
//
// Flow:
//
//	identity = GenerateIdentity()                 (first login)
//	sealed   = Seal(identity, passphrase)          (written to disk)
//	identity = Open(sealed, passphrase)            (every later run)
type KeyChain interface {
	// GenerateIdentity creates a fresh ed25519 key pair.
	GenerateIdentity() (*Identity, error)

	// Seal encrypts the identity seed with a key derived from passphrase
	// via Argon2id. The principal is bound as additional data.
	Seal(identity *Identity, passphrase string) (*models.SealedIdentity, error)

	// Open reverses Seal. A wrong passphrase or a tampered file yields
	// ErrIdentityDecryption.
	Open(sealed *models.SealedIdentity, passphrase string) (*Identity, error)
}
