package errs

import (
	"errors"
	"fmt"
)

var ErrPersistence = errors.New("persistence failure")

// PersistenceError wraps a storage failure together with the operation that hit it.
// Unlike the other types it unwraps to both the sentinel and the cause, so callers can
// still match driver errors such as context.DeadlineExceeded.
type PersistenceError struct {
	Operation string
	Cause     error
}

func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistence, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistence, e.Operation)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Cause}
}
