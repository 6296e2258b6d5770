// Package totp implements Time-based One-Time Password generation per
// RFC 6238 and RFC 4226.
//
// The package covers the full code path from a Base32-encoded shared secret
// to a zero-padded decimal code: secret normalization and decoding, big-endian
// time-counter construction, HMAC-SHA1 keyed hashing, and RFC 4226 dynamic
// truncation. It also generates fresh secrets and otpauth:// provisioning
// URIs for manual authenticator enrollment.
//
// By keeping the algorithm self-contained the package avoids direct
// dependencies on third-party TOTP libraries while staying bit-compatible
// with Google Authenticator, 1Password and the RFC test vectors.
//
// # Architecture
//
//   - engine  – functions in otp.go perform the pure computation: DecodeSecret,
//     GenerateHOTP, Generate/GenerateAt, Verify/VerifyAt and ProvisioningURI.
//     Every call recomputes the time counter; no digest or counter is ever
//     cached.
//
//   - device  – Device in device.go binds the engine to a SecretSource so codes
//     can be requested by secret name. vault.Store satisfies SecretSource.
//
// Generation is a single-shot pure computation: for a fixed secret, digits and
// period, the code is a function of the time counter alone, so two calls inside
// the same window always agree. The algorithm is HMAC-SHA1 only; drift
// handling beyond the current window is out of scope, as is QR rendering.
//
// # Usage
//
//	secret, _ := totp.GenerateSecretKey()
//
//	code, err := totp.Generate(secret, totp.DefaultParams())
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(code) // e.g. "492039"
//
//	// Codes by name, backed by a secret store:
//	device, _ := totp.NewDevice(store, totp.WithDigits(8))
//	code, err = device.Code("github")
//
// # Error Handling
//
// Every exported operation returns a typed error that may be wrapped using
// errors.Join. Inspect errors with errors.Is against package level sentinels
// such as ErrInvalidSecret, ErrInvalidDigits or ErrInvalidPeriod. A failed
// step never yields a partial code, and secret values never appear in error
// text.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
