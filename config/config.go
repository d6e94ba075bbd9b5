package config

import (
	"errors"
	"fmt"

	coretypes "github.com/projecteru2/core/types"

	"github.com/cocoonstack/macgen/mac"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds global macgen configuration.
type Config struct {
	// Prefix is the hex prefix fixed at the start of every address.
	// Separators are ignored. Env: MACGEN_PREFIX. Default: "".
	Prefix string `json:"prefix" mapstructure:"prefix"`
	// Local sets the locally-administered bit of the first octet.
	// Env: MACGEN_LOCAL. Default: true.
	Local bool `json:"local" mapstructure:"local"`
	// Count is the number of addresses to generate.
	// Env: MACGEN_COUNT. Default: 1.
	Count int `json:"count" mapstructure:"count"`
	// Seed makes output reproducible: the same seed yields the same addresses.
	// Empty means the runtime generator.
	Seed string `json:"seed" mapstructure:"seed"`
	// Crypto draws bytes from crypto/rand. Cannot be combined with Seed.
	Crypto bool `json:"crypto" mapstructure:"crypto"`
	// Format is "text" (one address per line) or "json".
	Format string `json:"format" mapstructure:"format"`
	// Log configuration, uses eru core's ServerLogConfig.
	Log *coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	opts := mac.DefaultOptions()
	return &Config{
		Prefix: opts.Prefix,
		Local:  opts.Local,
		Count:  opts.Count,
		Format: FormatText,
		Log: &coretypes.ServerLogConfig{
			Level: "warn",
		},
	}
}

// Validate rejects settings no command can act on.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("invalid count %d: %w", c.Count, mac.ErrInvalidCount)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: want %s or %s", c.Format, FormatText, FormatJSON)
	}
	if c.Seed != "" && c.Crypto {
		return errors.New("seed and crypto are mutually exclusive")
	}
	return nil
}

// Source returns the randomness source selected by Seed and Crypto.
func (c *Config) Source() mac.Source {
	switch {
	case c.Crypto:
		return mac.CryptoSource()
	case c.Seed != "":
		return mac.SeededSource(c.Seed)
	default:
		return mac.RuntimeSource()
	}
}
