package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrForbidden          = errors.New("forbidden")
)

// InvalidTransitionError reports a status change the order state machine rejects.
// From and To carry the current and the requested status names.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError reports records that collide with the one being created.
type ConflictError struct {
	Subject string
	IDs     []string
}

func NewConflictError(subject string, ids ...string) *ConflictError {
	return &ConflictError{Subject: subject, IDs: ids}
}

func (e *ConflictError) Error() string {
	if len(e.IDs) == 0 {
		return fmt.Sprintf("%s: %s", ErrConflict, e.Subject)
	}
	return fmt.Sprintf("%s: %s (conflicting: %s)", ErrConflict, e.Subject, strings.Join(e.IDs, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// PreconditionFailedError reports an operation that is not allowed in the
// current state of the involved records.
type PreconditionFailedError struct {
	Reason string
	Cause  error
}

func NewPreconditionFailedError(reason string) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason}
}

func NewPreconditionFailedErrorWithCause(reason string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPreconditionFailed, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Reason)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// ForbiddenError reports an actor that may not perform an action.
type ForbiddenError struct {
	Action  string
	ActorID string
}

func NewForbiddenError(action, actorID string) *ForbiddenError {
	return &ForbiddenError{Action: action, ActorID: actorID}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: actor %s may not %s", ErrForbidden, e.ActorID, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
