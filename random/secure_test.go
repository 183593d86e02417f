package random

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestSecure_Uniformity(t *testing.T) {
	s, err := NewSecure()
	require.NoError(t, err)

	const draws = 100000
	const bins = 256
	var counts [bins]int
	for i := 0; i < draws; i++ {
		v, err := s.Number(0, bins)
		require.NoError(t, err)
		require.Less(t, v, uint64(bins))
		counts[v]++
	}
	expected := float64(draws) / bins
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	// df=255: p(χ² > 350) is below 1e-4
	assert.Less(t, chi, 350.0, "chi-squared %.2f", chi)
}

func TestSecure_Number(t *testing.T) {
	s, err := NewSecure()
	require.NoError(t, err)

	v, err := s.Number(1000, 1003)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, v, uint64(1000))
	assert.Less(t, v, uint64(1003))

	_, err = s.Number(3, 3)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = s.Number(9, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSecure_KnownBytes(t *testing.T) {
	// probe consumes the first 8 bytes
	data := append(make([]byte, 8), 0x05, 0x01, 0, 0, 0, 0, 0, 0)
	s, err := NewSecure(WithReader(bytes.NewReader(data)))
	require.NoError(t, err)

	v, err := s.Number(0, 256)
	assert.NoError(t, err)
	// 0x0105 % 256
	assert.EqualValues(t, 0x05, v)
}

func TestSecure_EntropyFailure(t *testing.T) {
	s, err := NewSecure(WithReader(bytes.NewReader(make([]byte, 12))))
	require.NoError(t, err)

	_, err = s.Number(0, 256)
	assert.ErrorIs(t, err, ErrEntropyUnavailable)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestNewSecure_ConstructionFailure(t *testing.T) {
	testCases := []struct {
		description string
		reader      io.Reader
	}{
		{description: "reader error", reader: failingReader{err: errors.New("no /dev/urandom")}},
		{description: "short reader", reader: bytes.NewReader([]byte{1, 2, 3})},
		{description: "nil reader", reader: nil},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			s, err := NewSecure(WithReader(testCase.reader))
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrConstruction)
		})
	}
}
