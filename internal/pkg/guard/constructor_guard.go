// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific validation error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so any struct embedding a guard must be built through a
// constructor that calls NewConstructorGuard.
//
// Example usage:
//
//	type ReconcileProductCommand struct {
//	    productID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewReconcileProductCommand(id kernel.UUID) (ReconcileProductCommand, error) {
//	    if err := id.Validate(); err != nil {
//	        return ReconcileProductCommand{}, err
//	    }
//	    return ReconcileProductCommand{productID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReconcileProductCommand) Validate() error {
//	    return c.guard.Validate(ErrReconcileProductCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
