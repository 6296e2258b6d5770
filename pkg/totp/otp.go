package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultDigits = 6      // Standard 6-digit TOTP codes
	DefaultPeriod = 30     // 30-second validity window (RFC 6238 standard)
	Algorithm     = "SHA1" // The engine speaks HMAC-SHA1 only (RFC 6238 default)

	secretKeySize = 20 // 160-bit secrets (RFC 4226 recommendation)
)

var (
	// ValidateSecretKeyRegex ensures Base32 format: uppercase A-Z, digits 2-7, optional padding
	ValidateSecretKeyRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

	base32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)
)

// Params control code generation. Use DefaultParams for the RFC 6238
// standard settings; both fields must be positive.
type Params struct {
	Digits int // Number of digits in generated codes
	Period int // Code validity window in seconds
}

// DefaultParams returns the RFC 6238 standard parameters: 6 digits, 30 seconds.
func DefaultParams() Params {
	return Params{Digits: DefaultDigits, Period: DefaultPeriod}
}

// Validate rejects non-positive digits or period.
func (p Params) Validate() error {
	if p.Digits <= 0 {
		return ErrInvalidDigits
	}
	if p.Period <= 0 {
		return ErrInvalidPeriod
	}
	return nil
}

// DecodeSecret normalizes a Base32-encoded secret and decodes it to raw key
// bytes. Input is case-insensitive; surrounding whitespace and trailing
// padding are ignored. Any character outside the RFC 4648 alphabet A-Z2-7
// is rejected, as are lengths no unpadded Base32 encoding can produce.
func DecodeSecret(secret string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimSpace(secret))
	if !ValidateSecretKeyRegex.MatchString(s) {
		return nil, ErrInvalidSecret
	}
	s = strings.TrimRight(s, "=")
	// No whole-byte input encodes to 1, 3, or 6 characters mod 8, and the
	// stdlib unpadded decoder drops such a trailing quantum without
	// reporting an error, so these lengths must be rejected up front.
	switch len(s) % 8 {
	case 1, 3, 6:
		return nil, ErrInvalidSecret
	}
	key, err := base32NoPadding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// NormalizeSecret returns the canonical storage form of a Base32-encoded
// secret: uppercase, with surrounding whitespace and trailing padding
// removed. The secret is validated the same way DecodeSecret validates it.
func NormalizeSecret(secret string) (string, error) {
	if _, err := DecodeSecret(secret); err != nil {
		return "", err
	}
	return strings.TrimRight(strings.ToUpper(strings.TrimSpace(secret)), "="), nil
}

// GenerateSecretKey generates a new Base32-encoded secret key for TOTP.
func GenerateSecretKey() (string, error) {
	secret := make([]byte, secretKeySize)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return base32NoPadding.EncodeToString(secret), nil
}

// Generate generates a one-time code for the window containing the current
// time. The secret must be Base32-encoded text.
func Generate(secret string, p Params) (string, error) {
	return GenerateAt(secret, time.Now(), p)
}

// GenerateAt generates the one-time code for the window containing the
// specified time. Useful for testing or generating codes for specific moments.
func GenerateAt(secret string, at time.Time, p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	key, err := DecodeSecret(secret)
	if err != nil {
		return "", err
	}
	counter := uint64(at.Unix()) / uint64(p.Period)
	return GenerateHOTP(key, counter, p.Digits), nil
}

// GenerateHOTP implements the RFC 4226 HMAC-based one-time password
// algorithm: the counter is serialized as 8 big-endian bytes, hashed with
// HMAC-SHA1, dynamically truncated to a 31-bit integer and reduced to the
// requested number of digits. The result is left-zero-padded to exactly
// digits characters. digits must be positive; Generate and Verify enforce
// that through Params.Validate.
func GenerateHOTP(key []byte, counter uint64, digits int) string {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(buf)
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): the last nibble selects a 4-byte
	// window; the window's top bit is cleared to avoid sign ambiguity.
	offset := sum[len(sum)-1] & 0x0f
	code := uint64(binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff)

	return fmt.Sprintf("%0*d", digits, code%uint64(math.Pow10(digits)))
}

// Verify reports whether code matches the code for the window containing the
// current time. Only the current window is consulted; a code from an adjacent
// window does not verify. Comparison is constant time.
func Verify(secret, code string, p Params) (bool, error) {
	return VerifyAt(secret, code, time.Now(), p)
}

// VerifyAt reports whether code matches the code for the window containing
// the specified time, with the same matching rules as Verify. Useful for
// testing or checking codes against a recorded instant.
func VerifyAt(secret, code string, at time.Time, p Params) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	code = strings.TrimSpace(code)
	if len(code) != p.Digits || !isDigits(code) {
		return false, ErrInvalidOTP
	}
	expected, err := GenerateAt(secret, at, p)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(expected)) == 1, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// URIParams contains the parameters for provisioning URI generation.
type URIParams struct {
	Secret      string // Base32-encoded TOTP secret key (required)
	AccountName string // User identifier like email (required)
	Issuer      string // Service name displayed in authenticator apps (required)
	Digits      int    // Number of digits in generated codes (optional, defaults to 6)
	Period      int    // Code validity period in seconds (optional, defaults to 30)
}

// Validate ensures all required URI parameters are present and valid.
func (p URIParams) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !ValidateSecretKeyRegex.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// GetDefaults returns a copy with RFC 6238 standard defaults applied to zero-valued fields.
func (p URIParams) GetDefaults() URIParams {
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	return p
}

// ProvisioningURI creates a properly encoded otpauth:// URI for manual
// enrollment in authenticator apps. The URI format follows the Key Uri
// Format specification:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func ProvisioningURI(params URIParams) (string, error) {
	params.Secret = strings.ToUpper(strings.TrimSpace(params.Secret))
	if err := params.Validate(); err != nil {
		return "", err
	}

	params = params.GetDefaults()

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", Algorithm)
	query.Set("digits", fmt.Sprintf("%d", params.Digits))
	query.Set("period", fmt.Sprintf("%d", params.Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}
