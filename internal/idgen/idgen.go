package idgen

import "github.com/google/uuid"

// NewFunc produces a version 4 UUID using the library's own CSPRNG.
// Tests replace it to simulate entropy failures.
var NewFunc = uuid.NewRandom

// New returns a new random UUID or the error reported by the underlying reader.
func New() (uuid.UUID, error) { return NewFunc() }
