package errs

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden          = errors.New("operation is forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvariantViolation = errors.New("invariant violation")
)

// ForbiddenError is returned when the requester is authenticated but is not
// allowed to act on the object, e.g. cancelling someone else's order.
type ForbiddenError struct {
	Action string
	Reason string
}

func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrForbidden, e.Action, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError is returned when the requested change collides with
// existing state, e.g. a second delivery for the same order.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrConflict, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrConflict, e.ParamName, e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStateError is returned when an operation is not permitted from the
// object's current lifecycle state.
type InvalidStateError struct {
	Object  string
	State   string
	Message string
}

func NewInvalidStateError(object, state, message string) *InvalidStateError {
	return &InvalidStateError{Object: object, State: state, Message: message}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is %s, %s", ErrInvalidState, e.Object, e.State, e.Message)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvariantViolationError signals that the store returned something that
// should be impossible. It is never a client mistake.
type InvariantViolationError struct {
	Message string
	Cause   error
}

func NewInvariantViolationError(message string) *InvariantViolationError {
	return &InvariantViolationError{Message: message}
}

func NewInvariantViolationErrorWithCause(message string, cause error) *InvariantViolationError {
	return &InvariantViolationError{Message: message, Cause: cause}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInvariantViolation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Message)
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}
