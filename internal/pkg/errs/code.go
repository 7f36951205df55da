package errs

import "errors"

// Code is a stable machine-readable error kind.
type Code string

const (
	CodeNotFound           Code = "NOT_FOUND"
	CodeValidation         Code = "VALIDATION"
	CodeInvalidTransition  Code = "INVALID_TRANSITION"
	CodeConflict           Code = "CONFLICT"
	CodePreconditionFailed Code = "PRECONDITION_FAILED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeConcurrentUpdate   Code = "CONCURRENT_UPDATE"
	CodeInternal           Code = "INTERNAL"
)

// CodeOf classifies err by the sentinel it wraps. When several sentinels are
// reachable (errors.Join), the order of the cases below decides.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrObjectNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrPreconditionFailed):
		return CodePreconditionFailed
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrVersionIsInvalid):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return CodeValidation
	default:
		return CodeInternal
	}
}
