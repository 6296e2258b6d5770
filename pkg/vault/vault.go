package vault

import (
	"errors"
	"fmt"
	"strings"
)

// Store is the minimal interface for named secret storage. Implementations
// must keep secret values encrypted or otherwise protected at rest and must
// never write them to logs.
type Store interface {
	// Save stores a secret under the given name, overwriting any existing
	// value for that name.
	Save(name, secret string) error

	// Load returns the secret stored under the given name.
	// Returns ErrNotFound if no secret exists for that name.
	Load(name string) (string, error)

	// Delete removes the secret stored under the given name.
	// Returns ErrNotFound if no secret exists for that name.
	Delete(name string) error
}

// New creates a Store for the backend selected in cfg. An empty backend
// selects the OS keyring.
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendKeyring, "":
		return NewKeyringStore(cfg.Service), nil
	case BackendFile:
		var key []byte
		if cfg.EncryptionKey != "" {
			decoded, err := DecodeEncryptionKey(cfg.EncryptionKey)
			if err != nil {
				return nil, err
			}
			key = decoded
		}
		return NewFileStore(cfg.Path, key)
	default:
		return nil, errors.Join(ErrUnknownBackend, fmt.Errorf("backend %q", cfg.Backend))
	}
}

// validateName rejects names that would be ambiguous or invisible in storage.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// validateEntry checks both halves of a Save call before anything is written.
func validateEntry(name, secret string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if strings.TrimSpace(secret) == "" {
		return ErrEmptySecret
	}
	return nil
}
