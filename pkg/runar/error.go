package runar

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is
var (
	ErrTypeMismatch     = errors.New("Service type mismatch in action handler")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrDuplicateAction  = errors.New("action already registered")
	ErrActionNotFound   = errors.New("action not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidPath      = errors.New("invalid action path")
)

// TypeMismatchError is returned when a handler receives a service of the wrong concrete type
type TypeMismatchError struct {
	Expected TypeID
	Actual   TypeID
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrTypeMismatch.Error(), e.Expected, e.Actual)
}

// Is reports whether target is ErrTypeMismatch
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// MissingParameterError is returned when a named parameter is absent from the request
type MissingParameterError struct {
	Name string
}

// Error implements the error interface
func (e *MissingParameterError) Error() string {
	return "Missing required parameter: " + e.Name
}

// Is reports whether target is ErrMissingParameter
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// ExecutionError attaches the failing operation name to an error returned by an action
type ExecutionError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("Error executing %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// WrapExecution attaches operation context to err. A nil err stays nil.
func WrapExecution(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ExecutionError{Operation: operation, Err: err}
}
