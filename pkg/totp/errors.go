package totp

import "errors"

var (
	ErrInvalidSecret             = errors.New("invalid secret: must be Base32 (A-Z, 2-7)")
	ErrInvalidDigits             = errors.New("invalid digits: must be a positive integer")
	ErrInvalidPeriod             = errors.New("invalid period: must be a positive number of seconds")
	ErrInvalidOTP                = errors.New("invalid OTP format")
	ErrMissingSecret             = errors.New("missing secret")
	ErrMissingAccountName        = errors.New("missing account name")
	ErrMissingIssuer             = errors.New("missing issuer")
	ErrFailedToGenerateSecretKey = errors.New("failed to generate TOTP secret key")
	ErrNilSecretSource           = errors.New("secret source must not be nil")
)
