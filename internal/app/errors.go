package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the interactive session ended normally.
	ErrQuit = errors.New("quit requested")

	// ErrUnknownOperation indicates an -op name with no operation.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidSelection indicates a selection that is not "offset" or
	// "anchor:head".
	ErrInvalidSelection = errors.New("invalid selection")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}

// OperationError represents a failed step of a run.
type OperationError struct {
	Op     string // step name, e.g. "script"
	Target string // file or argument the step worked on
	Err    error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}
