// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrInvalidInput = errors.New("invalid input")

	// Check-related errors
	ErrSourceTooLarge = errors.New("definition exceeds the size limit")

	// Run history errors
	ErrRunNotFound   = errors.New("parse run not found")
	ErrStoreDisabled = errors.New("run history is not configured")
)
