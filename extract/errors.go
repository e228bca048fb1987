package extract

import (
	"errors"
	"fmt"
)

// ErrUnsafePath indicates an archive entry path would escape the
// destination directory.
var ErrUnsafePath = errors.New("archive entry escapes destination directory")

// Error describes a failed extraction, carrying the underlying cause
// and, when known, the archive entry being written.
type Error struct {
	Entry string
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("extract artifacts: %s: %v", e.Entry, e.Err)
	}
	return fmt.Sprintf("extract artifacts: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
