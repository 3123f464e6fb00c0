// Package common defines sentinel errors shared by passkeeper components.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrStorage    = errors.New("storage error")

	// Validation errors.
	ErrInvalidArgument = errors.New("invalid argument")

	// Sealed copy errors.
	ErrNotSealed = errors.New("no sealed copy stored")
	ErrDecrypt   = errors.New("decryption failed")
)
