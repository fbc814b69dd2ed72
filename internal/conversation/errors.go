package conversation

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned while a plan or flight request is outstanding.
	ErrBusy = errors.New("controller is busy")
	// ErrWrongStage is returned when an operation does not apply to the current stage.
	ErrWrongStage = errors.New("operation not available in this stage")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("controller is closed")
	// ErrSessionEnded is returned when the session was reset or closed while
	// a service call was outstanding. The call's outcome is discarded.
	ErrSessionEnded = errors.New("session ended before the request completed")
)

// ValidationError reports user input that was rejected without a transition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func wrongStage(op string, stage Stage) error {
	return fmt.Errorf("%w: %s during %s", ErrWrongStage, op, stage)
}
