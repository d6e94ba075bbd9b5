package config

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocoonstack/macgen/mac"
)

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	assert.Equal(t, "", conf.Prefix)
	assert.True(t, conf.Local)
	assert.Equal(t, 1, conf.Count)
	assert.Equal(t, FormatText, conf.Format)
	require.NotNil(t, conf.Log)
	assert.Equal(t, "warn", conf.Log.Level)
	assert.NoError(t, conf.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero_count", func(c *Config) { c.Count = 0 }, false},
		{"negative_count", func(c *Config) { c.Count = -1 }, true},
		{"json_format", func(c *Config) { c.Format = FormatJSON }, false},
		{"unknown_format", func(c *Config) { c.Format = "yaml" }, true},
		{"seed_only", func(c *Config) { c.Seed = "x" }, false},
		{"seed_and_crypto", func(c *Config) { c.Seed = "x"; c.Crypto = true }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfig()
			tt.mutate(conf)
			err := conf.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NegativeCountIsInvalidCount(t *testing.T) {
	conf := DefaultConfig()
	conf.Count = -3
	assert.ErrorIs(t, conf.Validate(), mac.ErrInvalidCount)
}

func TestSource(t *testing.T) {
	conf := DefaultConfig()
	conf.Crypto = true
	assert.Equal(t, rand.Reader, conf.Source())

	conf = DefaultConfig()
	conf.Seed = "fixture"
	a, err := mac.New(mac.WithSource(conf.Source())).Generate("", true, 4)
	require.NoError(t, err)
	b, err := mac.New(mac.WithSource(conf.Source())).Generate("", true, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	conf = DefaultConfig()
	assert.Equal(t, mac.RuntimeSource(), conf.Source())
}
