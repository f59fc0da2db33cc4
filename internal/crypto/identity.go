package crypto

import (
	"crypto/ed25519"
	"crypto/x509"
	"fmt"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// Identity is an ed25519 key pair acting as the caller identity of the
// client. Its principal is self-authenticating: it is derived from the
// DER-encoded public key.
type Identity struct {
	privateKey ed25519.PrivateKey
	der        []byte
	principal  models.Principal
}

// NewIdentityFromSeed rebuilds an identity from its 32-byte seed.
func NewIdentityFromSeed(seed []byte) (*Identity, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes", ErrInvalidPublicKey, ed25519.SeedSize)
	}
	return newIdentity(ed25519.NewKeyFromSeed(seed))
}

func newIdentity(priv ed25519.PrivateKey) (*Identity, error) {
	der, err := x509.MarshalPKIXPublicKey(priv.Public())
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return &Identity{
		privateKey: priv,
		der:        der,
		principal:  models.SelfAuthenticatingPrincipal(der),
	}, nil
}

// Principal returns the self-authenticating principal of the identity.
func (i *Identity) Principal() models.Principal {
	return i.principal
}

// PublicKeyDER returns the SubjectPublicKeyInfo encoding of the public key.
func (i *Identity) PublicKeyDER() []byte {
	return append([]byte(nil), i.der...)
}

// Sign signs msg with the private key.
func (i *Identity) Sign(msg []byte) []byte {
	return ed25519.Sign(i.privateKey, msg)
}

func (i *Identity) seed() []byte {
	return i.privateKey.Seed()
}

// VerifySignature checks an ed25519 signature made by the holder of the
// DER-encoded public key and returns the principal that key authenticates.
func VerifySignature(publicKeyDER, msg, sig []byte) (models.Principal, error) {
	pub, err := x509.ParsePKIXPublicKey(publicKeyDER)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	edPub, ok := pub.(ed25519.PublicKey)
	if !ok {
		return models.Principal{}, fmt.Errorf("%w: not an ed25519 key", ErrInvalidPublicKey)
	}

	if !ed25519.Verify(edPub, msg, sig) {
		return models.Principal{}, ErrInvalidSignature
	}

	return models.SelfAuthenticatingPrincipal(publicKeyDER), nil
}
