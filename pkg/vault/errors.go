package vault

import "errors"

var (
	// Input validation errors
	ErrEmptyName   = errors.New("empty secret name")
	ErrEmptySecret = errors.New("empty secret value")

	// Lookup errors
	ErrNotFound = errors.New("secret not found")

	// Encryption/decryption errors
	ErrEncryptionFailed     = errors.New("encryption failed")
	ErrDecryptionFailed     = errors.New("decryption failed")
	ErrInvalidEncryptionKey = errors.New("invalid encryption key: must be 32 bytes")
	ErrKeyGenerationFailed  = errors.New("key generation failed")
	ErrKeyDerivationFailed  = errors.New("key derivation failed")

	// Storage errors
	ErrStorageFailed = errors.New("storage operation failed")

	// Configuration errors
	ErrUnknownBackend = errors.New("unknown vault backend")
)
