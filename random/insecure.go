package random

import (
	"math/rand/v2"
	"time"

	"github.com/viant/uuidgen/internal/clock"
)

// Insecure is a non-cryptographic Source. The engine is seeded once, at
// construction, from wall-clock seconds, so two instances created within the
// same second produce identical sequences.
//
// Insecure is not safe for concurrent use.
type Insecure struct {
	seed   int64
	seeded bool
	now    func() time.Time
	rng    *rand.Rand
}

// Number returns draw % (max-min) + min.
func (s *Insecure) Number(min, max uint64) (uint64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return reduce(s.rng.Uint64(), min, max), nil
}

// Seed returns the seed the engine was initialised with.
func (s *Insecure) Seed() int64 {
	return s.seed
}

// NewInsecure creates an Insecure source.
func NewInsecure(options ...InsecureOption) *Insecure {
	ret := &Insecure{now: clock.Now}
	for _, option := range options {
		option(ret)
	}
	if !ret.seeded {
		ret.seed = ret.now().Unix()
		ret.seeded = true
	}
	s := uint64(ret.seed)
	ret.rng = rand.New(rand.NewPCG(s, s))
	return ret
}
