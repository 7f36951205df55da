// Package errs provides standardized error types for the rental marketplace.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced entity does not exist
//   - InvalidTransitionError: an order status change the state machine forbids
//   - ConflictError: a new record collides with existing ones
//   - PreconditionFailedError: an operation is not allowed in the current state
//   - ForbiddenError: the acting user may not perform the operation
//   - VersionIsInvalidError: a write raced with another write on the same record
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// CodeOf maps any error to a stable string code so outer layers can render
// a client response without inspecting messages.
package errs
