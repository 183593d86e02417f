package identifier

import (
	"fmt"

	"github.com/viant/uuidgen/internal/idgen"
	"github.com/viant/uuidgen/random"
)

// External delegates UUID generation to github.com/google/uuid, trusting its
// own CSPRNG. It shares nothing with Builder.
type External struct{}

// Build returns a library generated version 4 UUID.
func (e *External) Build() (UUID, error) {
	id, err := idgen.New()
	if err != nil {
		return UUID{}, fmt.Errorf("failed to generate uuid: %w: %w", random.ErrEntropyUnavailable, err)
	}
	return UUID(id), nil
}

// NewExternal creates an External generator.
func NewExternal() *External {
	return &External{}
}
