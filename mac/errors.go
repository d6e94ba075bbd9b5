package mac

import "errors"

// Sentinel errors, match with errors.Is.
var (
	// ErrInvalidPrefix means the canonical prefix has odd length or is longer than 5 bytes.
	ErrInvalidPrefix = errors.New("prefix must contain 0-5 bytes")
	// ErrInvalidHexDigit means the canonical prefix holds a letter or digit that is not hex.
	ErrInvalidHexDigit = errors.New("invalid hex digit")
	// ErrInvalidCount means a negative address count was requested.
	ErrInvalidCount = errors.New("count must not be negative")
	// ErrSource means the randomness source failed to fill a buffer.
	ErrSource = errors.New("randomness source failed")
	// ErrInvalidAddr means a string could not be parsed as a 6-byte MAC address.
	ErrInvalidAddr = errors.New("invalid MAC address")
)
