package random

import (
	"io"
	"time"
)

// InsecureOption configures an Insecure source.
type InsecureOption func(s *Insecure)

// WithSeed sets an explicit seed, bypassing the clock.
func WithSeed(seed int64) InsecureOption {
	return func(s *Insecure) {
		s.seed = seed
		s.seeded = true
	}
}

// WithNow sets the clock used to derive the seed.
func WithNow(now func() time.Time) InsecureOption {
	return func(s *Insecure) {
		s.now = now
	}
}

// SecureOption configures a Secure source.
type SecureOption func(s *Secure)

// WithReader sets the entropy reader (crypto/rand.Reader by default).
func WithReader(reader io.Reader) SecureOption {
	return func(s *Secure) {
		s.reader = reader
	}
}
