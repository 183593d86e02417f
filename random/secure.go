package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

const drawSize = 8

// Secure draws every number from a cryptographically secure reader. A failed
// read is returned as ErrEntropyUnavailable; there is no fallback.
type Secure struct {
	reader io.Reader
}

// Number reads exactly 8 bytes and reduces them to [min, max).
func (s *Secure) Number(min, max uint64) (uint64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	draw, err := s.draw()
	if err != nil {
		return 0, err
	}
	return reduce(draw, min, max), nil
}

func (s *Secure) draw() (uint64, error) {
	var buf [drawSize]byte
	if _, err := io.ReadFull(s.reader, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// NewSecure creates a Secure source and probes its reader once so that a
// missing entropy backend fails setup instead of the first draw.
func NewSecure(options ...SecureOption) (*Secure, error) {
	ret := &Secure{reader: rand.Reader}
	for _, option := range options {
		option(ret)
	}
	if ret.reader == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrConstruction)
	}
	if _, err := ret.draw(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	return ret, nil
}
