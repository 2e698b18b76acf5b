package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// the caller passed a nil error, so validation never fails silently.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes values built by their constructor from zero
// values. Value objects and commands in this codebase embed one and check it
// in Validate, which turns `var cmd DispatchParcelCommand` handed straight to
// a handler into an explicit error instead of silently operating on empty
// fields.
//
//	type DispatchParcelCommand struct {
//	    parcelID kernel.UUID
//	    guard    kernel.ConstructorGuard
//	}
//
//	func NewDispatchParcelCommand(parcelID kernel.UUID) (DispatchParcelCommand, error) {
//	    if err := parcelID.Validate(); err != nil {
//	        return DispatchParcelCommand{}, err
//	    }
//	    return DispatchParcelCommand{parcelID: parcelID, guard: kernel.NewConstructorGuard()}, nil
//	}
//
//	func (c DispatchParcelCommand) Validate() error {
//	    return c.guard.Validate(ErrDispatchParcelCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as properly constructed.
// Constructors set the guard only after their own validation passed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created through NewConstructorGuard.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
