package random

import "errors"

// Sentinel errors; callers match them with errors.Is.
var (
	// ErrInvalidRange is returned when max <= min.
	ErrInvalidRange = errors.New("random: invalid range")

	// ErrEntropyUnavailable is returned when the secure reader fails to
	// produce bytes.
	ErrEntropyUnavailable = errors.New("random: entropy unavailable")

	// ErrConstruction is returned when a secure backend cannot be used at
	// construction time.
	ErrConstruction = errors.New("random: source construction failed")
)
