package totp

import "time"

// SecretSource provides named TOTP secrets. It is the only storage capability
// the engine depends on; vault.Store satisfies it.
type SecretSource interface {
	Load(name string) (string, error)
}

// Device generates one-time codes for secrets held in a SecretSource,
// keyed by name. The zero Device is not usable; construct with NewDevice.
type Device struct {
	source SecretSource
	params Params
	now    func() time.Time
}

// DeviceOption configures Device creation.
type DeviceOption func(*Device)

// WithDigits sets the number of digits in generated codes.
func WithDigits(digits int) DeviceOption {
	return func(d *Device) { d.params.Digits = digits }
}

// WithPeriod sets the code validity window in seconds.
func WithPeriod(seconds int) DeviceOption {
	return func(d *Device) { d.params.Period = seconds }
}

// WithClock replaces the wall clock. Tests use it to pin generation to a
// known instant.
func WithClock(now func() time.Time) DeviceOption {
	return func(d *Device) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDevice creates a Device reading secrets from source. Defaults are the
// RFC 6238 standard parameters; invalid options fail here, before any code
// is requested.
func NewDevice(source SecretSource, opts ...DeviceOption) (*Device, error) {
	if source == nil {
		return nil, ErrNilSecretSource
	}
	d := &Device{
		source: source,
		params: DefaultParams(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.params.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Code loads the named secret and generates its one-time code for the
// current instant. Every call re-reads the store and recomputes the time
// counter; nothing is cached between calls.
func (d *Device) Code(name string) (string, error) {
	return d.CodeAt(name, d.now())
}

// CodeAt generates the named secret's code for the window containing at.
func (d *Device) CodeAt(name string, at time.Time) (string, error) {
	secret, err := d.source.Load(name)
	if err != nil {
		return "", err
	}
	return GenerateAt(secret, at, d.params)
}
