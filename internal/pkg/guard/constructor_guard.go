// Package guard provides the constructor guard used by value objects, entities
// and commands to tell constructed instances apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types that must only be created through
// their constructor. The zero value is "not constructed".
//
// Example:
//
//	type Commitment struct {
//	    kind  CommitmentKind
//	    value float64
//	    guard guard.ConstructorGuard
//	}
//
//	func (c Commitment) Validate() error {
//	    return c.guard.Validate(ErrCommitmentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as constructed. Call it from constructors only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guarded object is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
