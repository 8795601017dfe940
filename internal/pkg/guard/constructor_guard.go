// Package guard holds the constructor guard shared by domain values, commands and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Its zero value is
// "not constructed", so embedding it lets Validate catch struct literals that
// skipped validation.
//
//	type FindOrderQuery struct {
//	    orderID kernel.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (q FindOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrFindOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
