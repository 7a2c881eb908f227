package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrScholarshipNotFound = errors.New("scholarship not found")
	ErrScholarshipInactive = errors.New("scholarship is not active")
	ErrInvalidRoleKey      = errors.New("invalid role key")
	ErrDuplicateApproval   = errors.New("an approved application already exists for this scholarship")
)

// ValidationError reports a malformed or out-of-range input field. The
// offending field is always identified so the caller can surface it.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransactionError reports a failed or timed-out ledger call. The
// underlying cause is preserved for the caller.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("ledger %s failed: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a storage failure after a successful
// evaluation. It is distinct from TransactionError so a verdict is never
// reported as final without the record being durable.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist record: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
