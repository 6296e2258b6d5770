package vault_test

import (
	"path/filepath"
	"testing"

	"github.com/dmitrymomot/otpvault/pkg/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("keyring backend", func(t *testing.T) {
		t.Parallel()
		store, err := vault.New(vault.Config{Backend: vault.BackendKeyring, Service: "otpvault-test"})
		require.NoError(t, err)
		assert.IsType(t, &vault.KeyringStore{}, store)
	})

	t.Run("empty backend defaults to keyring", func(t *testing.T) {
		t.Parallel()
		store, err := vault.New(vault.Config{})
		require.NoError(t, err)
		assert.IsType(t, &vault.KeyringStore{}, store)
	})

	t.Run("file backend", func(t *testing.T) {
		t.Parallel()
		encoded, err := vault.GenerateEncodedEncryptionKey()
		require.NoError(t, err)

		store, err := vault.New(vault.Config{
			Backend:       vault.BackendFile,
			Path:          filepath.Join(t.TempDir(), "vault.json"),
			EncryptionKey: encoded,
		})
		require.NoError(t, err)
		assert.IsType(t, &vault.FileStore{}, store)

		require.NoError(t, store.Save("github", "JBSWY3DPEHPK3PXP"))
		secret, err := store.Load("github")
		require.NoError(t, err)
		assert.Equal(t, "JBSWY3DPEHPK3PXP", secret)
	})

	t.Run("file backend with bad key", func(t *testing.T) {
		t.Parallel()
		_, err := vault.New(vault.Config{
			Backend:       vault.BackendFile,
			Path:          filepath.Join(t.TempDir(), "vault.json"),
			EncryptionKey: "not a key",
		})
		assert.ErrorIs(t, err, vault.ErrInvalidEncryptionKey)
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Parallel()
		_, err := vault.New(vault.Config{Backend: "redis"})
		assert.ErrorIs(t, err, vault.ErrUnknownBackend)
	})
}
