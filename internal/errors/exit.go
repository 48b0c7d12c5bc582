package errors

import (
	"errors"
	"io/fs"
)

// Exit codes for the usdasm CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitClassification indicates no usable asset node was found.
	ExitClassification = 2

	// ExitCycle indicates a cyclic directory structure aborted the run.
	ExitCycle = 3

	// ExitNotFound indicates the target path does not exist.
	ExitNotFound = 4
)

// ExitError carries an exit code alongside the underlying error.
// The command layer sets Printed when it has already rendered the error,
// so main does not print it twice.
type ExitError struct {
	Code    int
	Err     error
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit error"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an assembler error to an exit code via its sentinel.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrCycle):
		return ExitCycle
	case errors.Is(err, ErrNoValidNodes), errors.Is(err, ErrClassification):
		return ExitClassification
	case errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitClassification:
		return "Classification Error"
	case ExitCycle:
		return "Cyclic Structure"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
