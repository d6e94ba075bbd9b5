// Package mac generates unicast MAC-48 addresses from an optional fixed
// hex prefix and a pluggable randomness source.
package mac

import (
	"fmt"
	"io"
)

// Options carries the generator inputs. DefaultOptions gives the defaults
// used when a caller supplies nothing.
type Options struct {
	Prefix string
	Local  bool
	Count  int
}

// DefaultOptions returns an empty prefix, locally administered, one address.
func DefaultOptions() Options {
	return Options{Local: true, Count: 1}
}

// Generator produces MAC addresses from a Source.
// It is safe for concurrent use if its Source is.
type Generator struct {
	src Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the default RuntimeSource.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// New returns a Generator using RuntimeSource unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{src: RuntimeSource()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// maxPrealloc bounds the up-front allocation for large counts.
const maxPrealloc = 1024

// GenerateAddresses parses prefix and returns count formatted addresses
// from the runtime generator. See Generator.Generate.
func GenerateAddresses(prefix string, local bool, count int) ([]string, error) {
	return defaultGenerator.Generate(prefix, local, count)
}

// Generate validates prefix, then returns count addresses formatted as
// "XX:XX:XX:XX:XX:XX" in generation order. Nothing is drawn from the
// source when validation fails. count 0 yields an empty slice.
func (g *Generator) Generate(prefix string, local bool, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	p, err := ParsePrefix(prefix)
	if err != nil {
		return nil, err
	}
	addrs, err := g.GenerateAddrs(p, local, count)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out, nil
}

// GenerateAddrs is Generate for an already parsed prefix.
func (g *Generator) GenerateAddrs(p Prefix, local bool, count int) ([]Addr, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	out := make([]Addr, 0, min(count, maxPrealloc))
	for i := range count {
		a, err := g.Next(p, local)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Next returns one address: the prefix bytes, random fill up to 6 bytes,
// and a normalized first byte. Prefix bits 0 and 1 of the first byte are
// always overwritten.
func (g *Generator) Next(p Prefix, local bool) (Addr, error) {
	var a Addr
	n := copy(a.bytes[:], p.bytes)
	if _, err := io.ReadFull(g.src, a.bytes[n:]); err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrSource, err)
	}
	a.bytes[0] = NormalizeFirstByte(a.bytes[0], local)
	return a, nil
}
