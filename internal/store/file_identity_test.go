package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/icrc7-dapp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFileStorage_SaveLoadRemove(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "identity.json")
	s := NewIdentityFileStorage(path)

	sealed := &models.SealedIdentity{
		Version:    models.IdentityFileVersion,
		Principal:  "2vxsx-fae",
		Salt:       []byte{1, 2, 3},
		Nonce:      []byte{4, 5, 6},
		Ciphertext: []byte{7, 8, 9},
	}
	require.NoError(t, s.Save(ctx, sealed))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sealed, loaded)

	require.NoError(t, s.Remove(ctx))
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrIdentityNotFound)

	// second remove is a no-op
	assert.NoError(t, s.Remove(ctx))
}

func TestIdentityFileStorage_Overwrite(t *testing.T) {
	ctx := context.Background()
	s := NewIdentityFileStorage(filepath.Join(t.TempDir(), "identity.json"))

	require.NoError(t, s.Save(ctx, &models.SealedIdentity{Version: 1, Principal: "first"}))
	require.NoError(t, s.Save(ctx, &models.SealedIdentity{Version: 1, Principal: "second"}))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.Principal)
}

func TestIdentityFileStorage_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewIdentityFileStorage(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptedIdentity)
}

func TestIdentityFileStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewIdentityFileStorage(filepath.Join(t.TempDir(), "identity.json"))
	assert.ErrorIs(t, s.Save(ctx, &models.SealedIdentity{}), context.Canceled)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
