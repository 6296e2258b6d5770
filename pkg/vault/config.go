package vault

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

const (
	// BackendKeyring stores secrets in the OS keyring.
	BackendKeyring = "keyring"
	// BackendFile stores secrets in an encrypted JSON vault file.
	BackendFile = "file"

	// DefaultService is the keyring service name entries are filed under.
	DefaultService = "otpvault"
)

var (
	cfg     Config
	cfgErr  error
	cfgOnce sync.Once
)

type Config struct {
	Backend       string `env:"OTPVAULT_BACKEND" envDefault:"keyring"`  // Storage backend: "keyring" or "file"
	Service       string `env:"OTPVAULT_SERVICE" envDefault:"otpvault"` // Keyring service name
	Path          string `env:"OTPVAULT_PATH"`                          // Vault file path (file backend only)
	EncryptionKey string `env:"OTPVAULT_ENCRYPTION_KEY"`                // Base64 master key (file backend only)
}

// LoadConfig loads the vault configuration from environment variables,
// reading them at most once per process. Unset variables fall back to the
// keyring backend under DefaultService.
func LoadConfig() (Config, error) {
	cfgOnce.Do(func() {
		cfg, cfgErr = parseConfig()
	})
	if cfgErr != nil {
		return Config{}, cfgErr
	}
	return cfg, nil
}

func parseConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
