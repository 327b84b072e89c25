package listener

import (
	"testing"
	"time"

	"github.com/0xalexb/sitecfg/config"
	yamlparser "github.com/0xalexb/sitecfg/config/parser/yaml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher []byte

func (f staticFetcher) Fetch() ([]byte, error) {
	return f, nil
}

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Address: ":9090", WriteTimeout: time.Second}

	assert.True(t, cfg.SetDefaults())
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, time.Second, cfg.WriteTimeout)
	assert.Equal(t, DefaultReadHeaderTimeout, cfg.ReadHeaderTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout)

	assert.False(t, cfg.SetDefaults(), "second call has nothing to fill")
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "valid", cfg: Config{Address: ":8080"}},
		{name: "valid host", cfg: Config{Address: "127.0.0.1:4321"}},
		{name: "empty address", cfg: Config{}, want: ErrEmptyAddress},
		{name: "missing port", cfg: Config{Address: "localhost"}, want: ErrInvalidAddress},
		{name: "negative timeout", cfg: Config{Address: ":8080", WriteTimeout: -1}, want: ErrNegativeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()

			if tt.want == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfig_LoadedThroughProvider(t *testing.T) {
	t.Parallel()

	data := staticFetcher(`
listener:
  address: 127.0.0.1:4321
  writeTimeout: 5s
`)

	cfg, err := config.Provider(&Config{}, "listener")(yamlparser.NewParser(), data)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4321", cfg.Address)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var cfg Config

	WithAddress("")(&cfg)
	assert.Empty(t, cfg.Address, "WithAddress should set address even when empty")

	WithTimeouts(time.Second, 2*time.Second, 3*time.Second)(&cfg)
	assert.Equal(t, Config{ReadHeaderTimeout: time.Second, WriteTimeout: 2 * time.Second, IdleTimeout: 3 * time.Second}, cfg)
}
