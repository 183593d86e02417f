package identifier

import (
	"fmt"

	"github.com/viant/uuidgen/random"
)

// Builder assembles UUIDs from a borrowed random.Source. It holds no other
// state; concurrency guarantees are those of the source.
type Builder struct {
	source random.Source
}

// Build draws 16 bytes, forcing the version nibble of byte 6 to 4 and the top
// two bits of byte 8 to 10. The first failed draw aborts the build.
func (b *Builder) Build() (UUID, error) {
	var ret UUID
	for i := range ret {
		var err error
		switch i {
		case versionByte:
			ret[i], err = b.draw(i, 16, version4)
		case variantByte:
			ret[i], err = b.draw(i, 64, variantRFC)
		default:
			ret[i], err = b.draw(i, 256, 0)
		}
		if err != nil {
			return UUID{}, err
		}
	}
	return ret, nil
}

func (b *Builder) draw(index int, max uint64, mask byte) (byte, error) {
	v, err := b.source.Number(0, max)
	if err != nil {
		return 0, fmt.Errorf("failed to draw uuid byte %d: %w", index, err)
	}
	return byte(v) | mask, nil
}

// NewBuilder creates a builder over source.
func NewBuilder(source random.Source) *Builder {
	return &Builder{source: source}
}
