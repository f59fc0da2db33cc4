package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// identityFileStorage is the default implementation of
// [IdentityFileStorage]. The sealed identity is kept as a single JSON file
// readable only by its owner.
type identityFileStorage struct {
	path string
}

// NewIdentityFileStorage constructs an [IdentityFileStorage] rooted at path.
func NewIdentityFileStorage(path string) IdentityFileStorage {
	return &identityFileStorage{path: path}
}

// Save writes the sealed identity atomically: the payload goes to a
// temporary file in the same directory, which then replaces the target.
func (s *identityFileStorage) Save(ctx context.Context, sealed *models.SealedIdentity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sealed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create identity dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".identity-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp identity file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write identity: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod identity: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close identity: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace identity file: %w", err)
	}

	return nil
}

// Load reads the sealed identity. It returns [ErrIdentityNotFound] when
// no login happened yet.
func (s *identityFileStorage) Load(ctx context.Context) (*models.SealedIdentity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read identity: %w", err)
	}

	var sealed models.SealedIdentity
	if err := json.Unmarshal(data, &sealed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedIdentity, err)
	}

	return &sealed, nil
}

// Remove deletes the identity file. Removing a missing file is not an error.
func (s *identityFileStorage) Remove(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove identity: %w", err)
	}
	return nil
}
