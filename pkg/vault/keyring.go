package vault

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore persists secrets in the operating system keyring
// (Keychain on macOS, Credential Manager on Windows, Secret Service on
// Linux). Encryption at rest and user scoping are provided by the OS,
// so the store itself holds no key material.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a store that files all entries under the given
// keyring service name. An empty service falls back to DefaultService so
// that entries from different tools do not collide.
func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = DefaultService
	}
	return &KeyringStore{service: service}
}

// Save stores a secret in the OS keyring, overwriting any existing entry.
func (s *KeyringStore) Save(name, secret string) error {
	if err := validateEntry(name, secret); err != nil {
		return err
	}
	if err := keyring.Set(s.service, name, secret); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

// Load returns the secret stored under name, or ErrNotFound.
func (s *KeyringStore) Load(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	secret, err := keyring.Get(s.service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrStorageFailed, err)
	}
	return secret, nil
}

// Delete removes the secret stored under name, or returns ErrNotFound.
func (s *KeyringStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := keyring.Delete(s.service, name); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}
