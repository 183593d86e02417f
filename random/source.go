package random

import "fmt"

// Source returns uniformly distributed unsigned integers in [min, max).
type Source interface {
	Number(min, max uint64) (uint64, error)
}

// Kind names used by configuration and tracing.
const (
	KindSecure   = "secure"
	KindInsecure = "insecure"
)

func checkRange(min, max uint64) error {
	if max <= min {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}
	return nil
}

// reduce maps a full-width draw onto [min, max). The modulo is slightly biased
// towards low values when max-min does not divide 2^64.
func reduce(draw, min, max uint64) uint64 {
	return draw%(max-min) + min
}
