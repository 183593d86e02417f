package identifier

import "github.com/google/uuid"

// Size is the length of a UUID in bytes.
const Size = 16

const (
	versionByte = 6
	variantByte = 8
	version4    = 0x40
	variantRFC  = 0x80
)

// UUID is a 16 byte identifier. Being an array it is copied by value and
// cannot be modified through a returned copy.
type UUID [Size]byte

// Generator produces version 4 UUIDs.
type Generator interface {
	Build() (UUID, error)
}

// Version returns the version nibble (byte 6, high four bits).
func (u UUID) Version() int {
	return int(u[versionByte] >> 4)
}

// Variant returns the two variant bits of byte 8; 0b10 for RFC 4122.
func (u UUID) Variant() int {
	return int(u[variantByte] >> 6)
}

// IsV4 reports whether u carries the RFC 4122 version 4 markers.
func (u UUID) IsV4() bool {
	return u[versionByte]&0xF0 == version4 && u[variantByte]&0xC0 == variantRFC
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}
