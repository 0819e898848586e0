package edgar

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = constError("transport failure")

	// ErrStaticLoad indicates the bundled default dataset could not be read.
	ErrStaticLoad = constError("could not load default dataset")
)

// FetchError reports a non-success HTTP status from the relay or upstream.
type FetchError struct {
	// CIK is the identifier as requested, before padding.
	CIK string

	// StatusCode is the HTTP status returned.
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch data for CIK %s. Status: %d", e.CIK, e.StatusCode)
}
