package study

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is reported before any analysis runs on blank input.
var ErrEmptyInput = errors.New("please enter some text first")

// ComputationError wraps an unexpected fault raised while analysing text.
type ComputationError struct {
	Action Action
	Fault  any
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("error processing text (%s): %v", e.Action, e.Fault)
}

// Unwrap exposes the fault when it was an error value.
func (e *ComputationError) Unwrap() error {
	if err, ok := e.Fault.(error); ok {
		return err
	}
	return nil
}
