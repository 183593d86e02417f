// Package idgen wraps the google/uuid random generator so that it can be
// stubbed in tests. It lives under `internal` because only the identifier
// package is expected to call it.
package idgen
