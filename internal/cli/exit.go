package cli

import (
	"errors"

	"github.com/specialistvlad/aocrunner/internal/input"
	"github.com/specialistvlad/aocrunner/internal/puzzle"
)

// Process exit codes. Each fatal class has its own code.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitNoDays  = 3
	ExitNoInput = 4
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// FromError maps an application error onto the exit code for its class.
func FromError(err error) *ExitError {
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, puzzle.ErrNoDays):
		return &ExitError{Code: ExitNoDays, Message: err.Error()}
	case errors.Is(err, input.ErrNoValidInput):
		return &ExitError{Code: ExitNoInput, Message: err.Error()}
	default:
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
}
