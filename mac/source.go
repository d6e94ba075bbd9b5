package mac

import (
	"crypto/rand"
	"crypto/sha256"
	mrand "math/rand/v2"
)

// Source fills address bytes. Any io.Reader satisfies it.
type Source interface {
	Read(p []byte) (n int, err error)
}

type runtimeSource struct{}

func (runtimeSource) Read(p []byte) (int, error) {
	for i := 0; i < len(p); {
		v := mrand.Uint64()
		for j := 0; j < 8 && i < len(p); j++ {
			p[i] = byte(v)
			v >>= 8
			i++
		}
	}
	return len(p), nil
}

// RuntimeSource returns a Source backed by the math/rand/v2 global
// generator. It is safe for concurrent use and is not reproducible.
func RuntimeSource() Source { return runtimeSource{} }

// SeededSource returns a deterministic Source: two sources built from the
// same seed produce the same byte stream. It is not safe for concurrent use.
func SeededSource(seed string) Source {
	return mrand.NewChaCha8(sha256.Sum256([]byte(seed)))
}

// CryptoSource returns crypto/rand.Reader.
func CryptoSource() Source { return rand.Reader }
