package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a referenced application no longer exists.
	ErrNotFound = errors.New("application not found")
	// ErrInvalidField signals an attempt to patch a field outside status/rating.
	ErrInvalidField = errors.New("only status and rating can be updated")
	// ErrUnauthorized signals a principal outside the admin allow-list.
	ErrUnauthorized = errors.New("not authorized")
	// ErrConfirmationRequired signals a destructive operation issued without explicit confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ValidationError carries the offending field so the caller can surface it inline.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// StoreError wraps a transport or backend failure from the backing store.
// The wrapped error stays reachable for errors.Is checks against driver sentinels.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
