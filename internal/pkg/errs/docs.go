// Package errs provides standardized error types for the ecommerce back-office.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its allowed bounds
//   - ValueIsNotUniqueError: For when a value collides with a unique constraint
//   - ObjectNotFoundError: For when an object cannot be found
//   - PersistenceError: For when the storage layer fails to read or write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, and Is() matching the cause chain
//
// The first four types form the validation family and are reported by IsValidation.
// Callers classify errors with IsValidation, IsNotFound and IsPersistence instead of
// type switches, so wrapped errors are recognized as well.
package errs
