package errs

import "errors"

// IsValidation reports whether err belongs to the validation family:
// required, invalid, out of range or not unique values.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsNotUnique)
}

// IsNotFound reports whether err signals a missing object.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsPersistence reports whether err was raised by the storage layer.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// WrapPersistence wraps err as a PersistenceError unless it is already classified.
// Validation and not-found errors pass through untouched.
func WrapPersistence(operation string, err error) error {
	if err == nil || IsValidation(err) || IsNotFound(err) || IsPersistence(err) {
		return err
	}
	return NewPersistenceError(operation, err)
}
