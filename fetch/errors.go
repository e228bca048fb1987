package fetch

import (
	"errors"
	"fmt"
)

// ErrMissingToken indicates no access token was configured.
var ErrMissingToken = errors.New("gitlab token is required")

// Error describes a failed artifact download. It carries the response
// status text and the request URL for diagnostics. The access token is
// never part of the message.
type Error struct {
	ProjectID string
	Job       string
	Status    string // HTTP status text; empty on transport errors
	URL       string // request URL; empty when the request never left
	Err       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("fetch artifacts for %s %s: %s (%s)",
			e.ProjectID, e.Job, e.Status, e.URL)
	}
	return fmt.Sprintf("fetch artifacts for %s %s: %v", e.ProjectID, e.Job, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
