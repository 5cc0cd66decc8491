package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup for a named station or a vehicle id that is
// absent from the dataset. It is fatal to the enclosing computation.
var ErrNotFound = errors.New("not found")

// ParseError reports coordinate or geometry text that does not match the
// expected format. It fails the single record carrying the text.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Text, e.Reason)
}
