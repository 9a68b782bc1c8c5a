package service

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotStarted          = errors.New("service not started")
	ErrTooManyParticipants = errors.New("too many participants")
	ErrLimitExceeded       = errors.New("suggestion limit exceeded")
	ErrInvalidSeed         = errors.New("invalid seed config")
)
