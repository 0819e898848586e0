package cli

import "fmt"

// ExitError carries a process exit status out of a command.
// Silent errors have already reported themselves to the user.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
