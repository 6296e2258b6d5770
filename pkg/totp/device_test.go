package totp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrymomot/otpvault/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSecretMissing = errors.New("secret not found")

// stubSource is an in-memory SecretSource for tests.
type stubSource map[string]string

func (s stubSource) Load(name string) (string, error) {
	secret, ok := s[name]
	if !ok {
		return "", errSecretMissing
	}
	return secret, nil
}

func TestNewDevice(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		source  totp.SecretSource
		opts    []totp.DeviceOption
		wantErr error
	}{
		{
			name:   "defaults",
			source: stubSource{},
		},
		{
			name:   "custom digits and period",
			source: stubSource{},
			opts:   []totp.DeviceOption{totp.WithDigits(8), totp.WithPeriod(60)},
		},
		{
			name:    "nil source",
			source:  nil,
			wantErr: totp.ErrNilSecretSource,
		},
		{
			name:    "zero digits",
			source:  stubSource{},
			opts:    []totp.DeviceOption{totp.WithDigits(0)},
			wantErr: totp.ErrInvalidDigits,
		},
		{
			name:    "negative period",
			source:  stubSource{},
			opts:    []totp.DeviceOption{totp.WithPeriod(-1)},
			wantErr: totp.ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			device, err := totp.NewDevice(tt.source, tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, device)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, device)
		})
	}
}

func TestDeviceCode_PinnedClock(t *testing.T) {
	t.Parallel()
	source := stubSource{"github": rfcSecret}

	device, err := totp.NewDevice(source,
		totp.WithDigits(8),
		totp.WithClock(func() time.Time { return time.Unix(59, 0) }),
	)
	require.NoError(t, err)

	code, err := device.Code("github")
	require.NoError(t, err)
	assert.Equal(t, "94287082", code)

	// Same pinned clock, same code: nothing is cached or mutated between calls.
	again, err := device.Code("github")
	require.NoError(t, err)
	assert.Equal(t, code, again)
}

func TestDeviceCodeAt(t *testing.T) {
	t.Parallel()
	source := stubSource{"github": rfcSecret}

	device, err := totp.NewDevice(source, totp.WithDigits(8))
	require.NoError(t, err)

	code, err := device.CodeAt("github", time.Unix(1111111111, 0))
	require.NoError(t, err)
	assert.Equal(t, "14050471", code)
}

func TestDeviceCode_Errors(t *testing.T) {
	t.Parallel()
	source := stubSource{"bad": "not-base32!"}

	device, err := totp.NewDevice(source)
	require.NoError(t, err)

	t.Run("unknown name propagates source error", func(t *testing.T) {
		t.Parallel()
		_, err := device.Code("unknown")
		require.Error(t, err)
		assert.ErrorIs(t, err, errSecretMissing)
	})

	t.Run("stored garbage reported as invalid secret", func(t *testing.T) {
		t.Parallel()
		_, err := device.Code("bad")
		require.Error(t, err)
		assert.ErrorIs(t, err, totp.ErrInvalidSecret)
	})
}
