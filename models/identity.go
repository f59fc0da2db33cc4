package models

// IdentityFileVersion is the current layout of [SealedIdentity].
const IdentityFileVersion = 1

// SealedIdentity is the on-disk form of the client key pair. The ed25519
// seed is encrypted with a key derived from the passphrase; the principal is
// kept in clear so the file can be identified without unlocking it.
type SealedIdentity struct {
	Version    int    `json:"version"`
	Principal  string `json:"principal"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}
