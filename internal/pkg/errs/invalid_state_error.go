package errs

import "fmt"

// ErrInvalidState is the sentinel error for all InvalidStateError instances.
// It marks operations attempted from a lifecycle state that forbids them,
// e.g. dispatching a parcel that is not pending.
var ErrInvalidState = fmt.Errorf("invalid state")

// InvalidStateError carries the entity, its current state, and the operation
// that was refused. The message is safe to surface to API callers as the
// actionable failure reason.
type InvalidStateError struct {
	Entity    string
	State     string
	Operation string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for the given entity,
// current state, and refused operation.
func NewInvalidStateError(entity string, state string, operation string) *InvalidStateError {
	return &InvalidStateError{
		Entity:    entity,
		State:     state,
		Operation: operation,
	}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(entity string, state string, operation string, cause error) *InvalidStateError {
	return &InvalidStateError{
		Entity:    entity,
		State:     state,
		Operation: operation,
		Cause:     cause,
	}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s %s in state %s (cause: %v)",
			ErrInvalidState, e.Operation, e.Entity, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s %s in state %s",
		ErrInvalidState, e.Operation, e.Entity, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
