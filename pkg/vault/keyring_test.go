package vault_test

import (
	"testing"

	"github.com/dmitrymomot/otpvault/pkg/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// The keyring mock keeps global state, so these tests stay sequential.

func TestKeyringStore_SaveLoad(t *testing.T) {
	keyring.MockInit()
	store := vault.NewKeyringStore("otpvault-test")

	require.NoError(t, store.Save("github", "JBSWY3DPEHPK3PXP"))

	secret, err := store.Load("github")
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", secret)

	// Overwriting replaces the stored value.
	require.NoError(t, store.Save("github", "GEZDGNBVGY3TQOJQ"))
	secret, err = store.Load("github")
	require.NoError(t, err)
	assert.Equal(t, "GEZDGNBVGY3TQOJQ", secret)
}

func TestKeyringStore_LoadNotFound(t *testing.T) {
	keyring.MockInit()
	store := vault.NewKeyringStore("otpvault-test")

	_, err := store.Load("missing")
	assert.ErrorIs(t, err, vault.ErrNotFound)
}

func TestKeyringStore_Delete(t *testing.T) {
	keyring.MockInit()
	store := vault.NewKeyringStore("otpvault-test")

	require.NoError(t, store.Save("github", "JBSWY3DPEHPK3PXP"))
	require.NoError(t, store.Delete("github"))

	_, err := store.Load("github")
	assert.ErrorIs(t, err, vault.ErrNotFound)

	assert.ErrorIs(t, store.Delete("github"), vault.ErrNotFound)
}

func TestKeyringStore_ServiceScoping(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, vault.NewKeyringStore("service-a").Save("github", "JBSWY3DPEHPK3PXP"))

	// Entries saved under one service are invisible to another.
	_, err := vault.NewKeyringStore("service-b").Load("github")
	assert.ErrorIs(t, err, vault.ErrNotFound)
}

func TestNewKeyringStore_DefaultService(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, vault.NewKeyringStore("").Save("github", "JBSWY3DPEHPK3PXP"))

	// An empty service name maps to DefaultService, so a second store with
	// the explicit default sees the same entry.
	secret, err := vault.NewKeyringStore(vault.DefaultService).Load("github")
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", secret)
}

func TestKeyringStore_Validation(t *testing.T) {
	keyring.MockInit()
	store := vault.NewKeyringStore("otpvault-test")

	assert.ErrorIs(t, store.Save("", "JBSWY3DPEHPK3PXP"), vault.ErrEmptyName)
	assert.ErrorIs(t, store.Save("github", "  "), vault.ErrEmptySecret)

	_, err := store.Load("")
	assert.ErrorIs(t, err, vault.ErrEmptyName)
	assert.ErrorIs(t, store.Delete(""), vault.ErrEmptyName)
}
