package repository

import "errors"

// Sentinel kinds for reference-data store errors.
var (
	ErrNotFound      = errors.New("config not found")
	ErrLoadReference = errors.New("reference data load failed")
)
