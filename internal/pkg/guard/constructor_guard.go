package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when a nil error is passed as the validation
// error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only
// created through their designated constructor functions. Embedding a guard in
// a struct makes zero-value instances detectable: the internal flag is only
// set by NewConstructorGuard, so any object built by direct struct literal
// fails Validate.
//
// Example usage:
//
//	var ErrReasonNotConstructed = errors.New("Reason must be created via NewReason")
//
//	type Reason struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewReason(text string) (Reason, error) {
//	    if text == "" {
//	        return Reason{}, errors.New("text is required")
//	    }
//	    return Reason{text: text, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Reason) Validate() error {
//	    return r.guard.Validate(ErrReasonNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// For zero-value objects it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
