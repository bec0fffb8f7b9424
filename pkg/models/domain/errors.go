package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a requested entity is absent. Read paths on
// whole sub-documents default to empty values instead; mutations and
// single-entity lookups return this.
var ErrNotFound = errors.New("not found")

// StorageError wraps a failure of the durable document store. Writes that
// cannot complete must surface one of these rather than silently dropping
// the mutation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// AnalysisError reports that the external reasoning call failed or returned
// a non-conforming shape. No partial result is ever synthesized alongside
// one of these.
type AnalysisError struct {
	Provider string
	Err      error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis via %s failed: %v", e.Provider, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// ValidationError reports malformed input to a mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
