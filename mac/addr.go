package mac

import (
	"encoding/hex"
	"fmt"
	"net"
	"strings"
)

const hexUpper = "0123456789ABCDEF"

// Addr is a MAC-48 address. It is a comparable value type and can be used
// as a map key.
type Addr struct {
	bytes [AddrLen]byte
}

// AddrFrom6 returns the address with the given bytes.
func AddrFrom6(b [AddrLen]byte) Addr {
	return Addr{bytes: b}
}

// ParseAddr parses colon, dash, Cisco dot or bare 12-digit hex notation.
// Case is ignored. EUI-64 and InfiniBand forms are rejected.
func ParseAddr(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if len(s) == AddrLen*2 && !strings.ContainsAny(s, ":-.") {
		var a Addr
		if _, err := hex.Decode(a.bytes[:], []byte(s)); err != nil {
			return Addr{}, fmt.Errorf("%w: %q: %w", ErrInvalidAddr, s, err)
		}
		return a, nil
	}
	hw, err := net.ParseMAC(s)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddr, err)
	}
	if len(hw) != AddrLen {
		return Addr{}, fmt.Errorf("%w: %q is %d bytes, want %d", ErrInvalidAddr, s, len(hw), AddrLen)
	}
	var a Addr
	copy(a.bytes[:], hw)
	return a, nil
}

// Bytes returns a copy of the address bytes.
func (a Addr) Bytes() [AddrLen]byte { return a.bytes }

// IsUnicast reports whether the I/G bit is clear.
func (a Addr) IsUnicast() bool { return a.bytes[0]&groupBit == 0 }

// IsLocal reports whether the U/L bit is set.
func (a Addr) IsLocal() bool { return a.bytes[0]&localBit != 0 }

// HardwareAddr returns a fresh net.HardwareAddr holding a.
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, AddrLen)
	copy(hw, a.bytes[:])
	return hw
}

// String formats a as six uppercase hex pairs joined by colons.
func (a Addr) String() string {
	var buf [AddrLen*3 - 1]byte
	for i, b := range a.bytes {
		off := i * 3 //nolint:mnd
		if i > 0 {
			buf[off-1] = ':'
		}
		buf[off] = hexUpper[b>>4]
		buf[off+1] = hexUpper[b&0x0f]
	}
	return string(buf[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Addr) UnmarshalText(b []byte) error {
	parsed, err := ParseAddr(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
