package identifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/uuidgen/random"
)

type stubSource struct {
	fn     func(min, max uint64) uint64
	calls  []uint64
	err    error
	failAt int
}

func (s *stubSource) Number(min, max uint64) (uint64, error) {
	s.calls = append(s.calls, max)
	if s.err != nil && len(s.calls) == s.failAt {
		return 0, s.err
	}
	return s.fn(min, max), nil
}

func TestBuilder_Build(t *testing.T) {
	testCases := []struct {
		description string
		fn          func(min, max uint64) uint64
		expect      UUID
	}{
		{
			description: "max-1 on every draw",
			fn:          func(_, max uint64) uint64 { return max - 1 },
			expect:      UUID{255, 255, 255, 255, 255, 255, 0x4F, 255, 0xBF, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			description: "zero on every draw",
			fn:          func(min, _ uint64) uint64 { return min },
			expect:      UUID{6: 0x40, 8: 0x80},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			source := &stubSource{fn: testCase.fn}
			actual, err := NewBuilder(source).Build()
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
			assert.True(t, actual.IsV4())
			assert.Equal(t, []uint64{256, 256, 256, 256, 256, 256, 16, 256, 64, 256, 256, 256, 256, 256, 256, 256}, source.calls)
		})
	}
}

func TestBuilder_SourceFailure(t *testing.T) {
	source := &stubSource{
		fn:     func(min, _ uint64) uint64 { return min },
		err:    random.ErrEntropyUnavailable,
		failAt: 9,
	}
	actual, err := NewBuilder(source).Build()
	assert.ErrorIs(t, err, random.ErrEntropyUnavailable)
	assert.Contains(t, err.Error(), "byte 8")
	assert.Equal(t, UUID{}, actual)
	// no draws after the failure, no retry
	assert.Len(t, source.calls, 9)
}

func TestBuilder_Invariants(t *testing.T) {
	secure, err := random.NewSecure()
	require.NoError(t, err)

	testCases := []struct {
		description string
		source      random.Source
	}{
		{description: "secure", source: secure},
		{description: "insecure", source: random.NewInsecure()},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			builder := NewBuilder(testCase.source)
			seen := make(map[UUID]bool, 10000)
			for i := 0; i < 10000; i++ {
				u, err := builder.Build()
				require.NoError(t, err)
				require.Equal(t, byte(0x40), u[6]&0xF0)
				require.Equal(t, byte(0x80), u[8]&0xC0)
				require.False(t, seen[u], "duplicate %v", u)
				seen[u] = true
			}
		})
	}
}

func TestBuilder_SharedSource(t *testing.T) {
	source := random.NewInsecure(random.WithSeed(1))
	first, err := NewBuilder(source).Build()
	require.NoError(t, err)
	second, err := NewBuilder(source).Build()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	replay, err := NewBuilder(random.NewInsecure(random.WithSeed(1))).Build()
	require.NoError(t, err)
	assert.Equal(t, first, replay)
}

func TestBuilder_ErrorMessage(t *testing.T) {
	source := &stubSource{fn: func(min, _ uint64) uint64 { return min }, err: errors.New("boom"), failAt: 1}
	_, err := NewBuilder(source).Build()
	assert.EqualError(t, err, "failed to draw uuid byte 0: boom")
}
