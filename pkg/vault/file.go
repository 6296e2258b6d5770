package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required master key size: 256 bits for AES-256.
	KeySize = 32

	// entryKeyInfo is the HKDF info prefix used to derive per-entry subkeys.
	// The entry name is appended, so a ciphertext copied to another entry
	// fails authentication on decrypt.
	entryKeyInfo = "otpvault-entry-v1:"

	// vaultVersion is the on-disk format version of the vault file.
	vaultVersion = 1

	// keyFileName is the master key file kept next to the vault file when no
	// key is supplied explicitly.
	keyFileName = "vault.key"
)

// vaultFile is the JSON document written to disk. Entry values are
// base64-encoded AES-256-GCM ciphertexts; names stay in the clear so
// entries can be listed without the key.
type vaultFile struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// FileStore persists secrets in a single JSON vault file, encrypting each
// entry with a subkey derived from a 32-byte master key. It is meant for
// systems without a usable OS keyring (headless hosts, containers, CI).
type FileStore struct {
	path string
	key  []byte

	mu sync.Mutex
}

// NewFileStore creates a file-backed store at path, or at DefaultVaultPath
// when path is empty. A nil key loads the master key from the key file next
// to the vault, generating one on first use; an explicit key must be exactly
// KeySize bytes.
func NewFileStore(path string, key []byte) (*FileStore, error) {
	if path == "" {
		defaultPath, err := DefaultVaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	if key == nil {
		loaded, err := loadOrCreateKeyFile(filepath.Join(filepath.Dir(path), keyFileName))
		if err != nil {
			return nil, err
		}
		key = loaded
	}
	if len(key) != KeySize {
		return nil, ErrInvalidEncryptionKey
	}
	return &FileStore{path: path, key: key}, nil
}

// DefaultVaultPath returns the per-user vault file location, under the OS
// config directory (e.g. ~/.config/otpvault/vault.json on Linux).
func DefaultVaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Join(ErrStorageFailed, err)
	}
	return filepath.Join(dir, "otpvault", "vault.json"), nil
}

// Save encrypts the secret and writes it to the vault file, overwriting any
// existing entry with the same name.
func (s *FileStore) Save(name, secret string) error {
	if err := validateEntry(name, secret); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vf, err := s.readVault()
	if err != nil {
		return err
	}

	blob, err := s.sealEntry(name, secret)
	if err != nil {
		return err
	}

	vf.Entries[name] = blob
	return s.writeVault(vf)
}

// Load decrypts and returns the secret stored under name.
// Returns ErrNotFound if no entry exists for that name.
func (s *FileStore) Load(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vf, err := s.readVault()
	if err != nil {
		return "", err
	}

	blob, ok := vf.Entries[name]
	if !ok {
		return "", ErrNotFound
	}
	return s.openEntry(name, blob)
}

// Delete removes the entry stored under name and rewrites the vault file.
// Returns ErrNotFound if no entry exists for that name.
func (s *FileStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vf, err := s.readVault()
	if err != nil {
		return err
	}

	if _, ok := vf.Entries[name]; !ok {
		return ErrNotFound
	}
	delete(vf.Entries, name)
	return s.writeVault(vf)
}

// sealEntry encrypts a secret with the per-entry subkey.
// Returns base64(nonce + ciphertext + tag).
func (s *FileStore) sealEntry(name, secret string) (string, error) {
	key, err := deriveEntryKey(s.key, name)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	// Prepend nonce to ciphertext for storage
	ciphertext := aesGCM.Seal(nonce, nonce, []byte(secret), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// openEntry decrypts a stored blob back to the secret. Any mismatch between
// blob, entry name, and master key surfaces as ErrDecryptionFailed.
func (s *FileStore) openEntry(name, blob string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	key, err := deriveEntryKey(s.key, name)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", ErrDecryptionFailed
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

// deriveEntryKey derives the AES subkey for one entry using HKDF-SHA256.
// Binding the entry name into the derivation keeps ciphertexts from being
// replayed under a different name.
func deriveEntryKey(master []byte, name string) ([]byte, error) {
	hkdfReader := hkdf.New(sha256.New, master, nil, []byte(entryKeyInfo+name))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdfReader, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// readVault loads the vault file, treating a missing file as an empty vault.
func (s *FileStore) readVault() (vaultFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vaultFile{Version: vaultVersion, Entries: map[string]string{}}, nil
		}
		return vaultFile{}, errors.Join(ErrStorageFailed, err)
	}

	var vf vaultFile
	if err := json.Unmarshal(data, &vf); err != nil {
		return vaultFile{}, errors.Join(ErrStorageFailed, err)
	}
	if vf.Version != vaultVersion {
		return vaultFile{}, errors.Join(ErrStorageFailed, fmt.Errorf("unsupported vault file version %d", vf.Version))
	}
	if vf.Entries == nil {
		vf.Entries = map[string]string{}
	}
	return vf, nil
}

// writeVault writes the vault file atomically: a temp file in the same
// directory is renamed over the target so readers never see partial writes.
func (s *FileStore) writeVault(vf vaultFile) error {
	data, err := json.MarshalIndent(vf, "", "  ")
	if err != nil {
		return errors.Join(ErrStorageFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".vault-*.json")
	if err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Join(ErrStorageFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

// loadOrCreateKeyFile reads a hex-encoded master key from path, generating
// and persisting a fresh key with owner-only permissions on first use.
func loadOrCreateKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrStorageFailed, err)
		}
		return createKeyFile(path)
	}

	key, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.Join(ErrInvalidEncryptionKey, err)
	}
	if len(key) != KeySize {
		return nil, ErrInvalidEncryptionKey
	}
	return key, nil
}

// createKeyFile generates a new master key and writes it hex-encoded to path.
func createKeyFile(path string) ([]byte, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Join(ErrStorageFailed, err)
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)+"\n"), 0o600); err != nil {
		return nil, errors.Join(ErrStorageFailed, err)
	}
	return key, nil
}

// GenerateEncryptionKey creates a new random 32-byte master key.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGenerationFailed, err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey creates a new master key in the base64 form
// accepted by the OTPVAULT_ENCRYPTION_KEY environment variable.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DecodeEncryptionKey parses a base64-encoded master key and checks its size.
func DecodeEncryptionKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, errors.Join(ErrInvalidEncryptionKey, err)
	}
	if len(key) != KeySize {
		return nil, ErrInvalidEncryptionKey
	}
	return key, nil
}
