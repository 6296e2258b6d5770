// Package vault provides encrypted, user-scoped storage for named TOTP
// secrets.
//
// Two backends implement the Store interface. KeyringStore delegates to the
// operating system keyring (Keychain on macOS, Credential Manager on Windows,
// Secret Service on Linux), so secrets are encrypted at rest and scoped to
// the current OS user without any key handling in this package. FileStore
// keeps secrets in a single JSON vault file for hosts without a usable
// keyring, encrypting each entry with AES-256-GCM under a per-entry subkey
// derived from a 32-byte master key via HKDF-SHA-256.
//
// # Architecture
//
//  1. Backend selection – New dispatches on Config.Backend ("keyring" or
//     "file"); LoadConfig reads the OTPVAULT_* environment variables once per
//     process.
//  2. Key management (file backend) – the master key comes from
//     OTPVAULT_ENCRYPTION_KEY (base64) or from a hex-encoded key file created
//     next to the vault with owner-only permissions on first use.
//  3. Entry encryption (file backend) – HKDF binds the entry name into each
//     subkey, so a ciphertext moved to another entry fails authentication.
//     The nonce is prepended to the ciphertext and the blob is base64-encoded
//     into the vault file.
//
// # Usage
//
//	import "github.com/dmitrymomot/otpvault/pkg/vault"
//
//	cfg, err := vault.LoadConfig()
//	if err != nil {
//	    // handle error
//	}
//
//	store, err := vault.New(cfg)
//	if err != nil {
//	    // handle error
//	}
//
//	if err := store.Save("github", "JBSWY3DPEHPK3PXP"); err != nil {
//	    // handle error
//	}
//
//	secret, err := store.Load("github")
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// All public functions return rich errors that wrap a sentinel package error
// such as ErrNotFound, ErrDecryptionFailed, or ErrStorageFailed. Use
// errors.Is to match against these sentinels. ErrNotFound is returned
// unwrapped so callers can distinguish a missing entry from a failing
// backend.
//
// # Security Model
//
// Secret values never appear in logs or error messages. The file backend
// writes the vault atomically (temp file plus rename) and creates the vault
// directory, vault file, and key file with owner-only permissions. Losing
// the master key makes the vault file unrecoverable; there is no fallback.
//
// # See Also
//
// Package totp consumes stored secrets through its SecretSource interface,
// which Store satisfies.
package vault
