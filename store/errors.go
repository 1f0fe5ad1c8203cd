package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStorageUnavailable means the requested operation has no reachable
	// backend. Datasets with a file fallback never return it; relational-only
	// entities do when the database file is absent.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports a required field that is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConstraintViolation reports a uniqueness conflict in the relational store.
type ConstraintViolation struct {
	Constraint string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint violated: %s", e.Constraint)
}
