package errs

import (
	"errors"
	"fmt"
)

var ErrValueIsNotUnique = errors.New("value is not unique")

// ValueIsNotUniqueError reports a value that is already taken by another record,
// e.g. a second customer registering with an existing email.
type ValueIsNotUniqueError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewValueIsNotUniqueError(paramName string, value any) *ValueIsNotUniqueError {
	return &ValueIsNotUniqueError{
		ParamName: paramName,
		Value:     value,
	}
}

func NewValueIsNotUniqueErrorWithCause(paramName string, value any, cause error) *ValueIsNotUniqueError {
	return &ValueIsNotUniqueError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *ValueIsNotUniqueError) Error() string {
	msg := fmt.Sprintf("%s: %s %s is already in use", ErrValueIsNotUnique, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsNotUniqueError) Unwrap() error {
	return ErrValueIsNotUnique
}

// Is matches targets in the cause chain; the sentinel is reached through Unwrap.
func (e *ValueIsNotUniqueError) Is(target error) bool {
	return e.Cause != nil && errors.Is(e.Cause, target)
}
