package shares

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrMalformedPayload indicates the body was not JSON or lacked a required, correctly typed field.
	ErrMalformedPayload = constError("malformed shares payload")

	// ErrEmptyWindow indicates no observation survived the fiscal-year and type filter.
	ErrEmptyWindow = constError("empty observation window")
)

// EmptyWindowError carries the cutoff that produced an empty window.
// It matches ErrEmptyWindow under errors.Is.
type EmptyWindowError struct {
	Cutoff int
}

func (e *EmptyWindowError) Error() string {
	return fmt.Sprintf("No shares data found for the period after %d.", e.Cutoff)
}

// Is reports whether target is ErrEmptyWindow.
func (e *EmptyWindowError) Is(target error) bool {
	return target == ErrEmptyWindow
}

// malformed wraps ErrMalformedPayload with the offending detail.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPayload, fmt.Sprintf(format, args...))
}
