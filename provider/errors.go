package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the services. Controllers map these onto
// HTTP status codes; anything else is an internal error.
var (
	// ErrInvalidCredentials covers unknown username, wrong password and
	// inactive account alike, so login responses never leak which one it
	// was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound covers both genuinely missing resources and
	// ownership mismatches disguised as missing resources.
	ErrNotFound = errors.New("resource not found")

	// ErrInactive marks a resolvable identity whose account status
	// forbids the operation.
	ErrInactive = errors.New("designer is inactive")
)

// ValidationError reports malformed or missing client input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// StorageError reports a failure of the object-storage backend.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
