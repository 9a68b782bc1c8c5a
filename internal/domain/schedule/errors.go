package schedule

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidInput marks classifier input the caller should have
	// validated, such as an unresolvable timezone identifier.
	ErrInvalidInput = errors.New("invalid input")
)
