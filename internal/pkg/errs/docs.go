// Package errs provides standardized error types for the parcel tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the failure kinds the service
// surfaces to callers:
//   - ObjectNotFoundError: a referenced id does not resolve
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of its domain
//   - DuplicateValueError: a unique field conflicts with an existing entity
//   - InvalidOperationError: the target exists but refuses the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// Handlers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps each sentinel to a status code. None of these failures are
// retried; each is scoped to the request that triggered it.
package errs
