// Package guard holds the ConstructorGuard used by intents and value objects
// to tell a constructed value apart from its zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into structs that must only be built through
// their constructor. The zero value reports itself as not constructed.
//
//	type SetFieldIntent struct {
//	    field order.Field
//	    guard guard.ConstructorGuard
//	}
//
//	func (i SetFieldIntent) Validate() error {
//	    return i.guard.Validate(ErrSetFieldIntentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
