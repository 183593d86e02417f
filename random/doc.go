// Package random defines Source, a capability returning unsigned integers in a
// half-open range, together with two interchangeable implementations:
//
//   - Insecure – a per-instance math/rand/v2 engine seeded from wall-clock
//     seconds. Fast, deterministic for a given seed, never suitable for
//     identifiers that must be unguessable.
//   - Secure   – draws fresh bytes from crypto/rand on every call and reports
//     read failures instead of degrading.
//
// Sources are not safe for concurrent use; wrap a shared instance with Locked.
package random
