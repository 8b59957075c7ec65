package text

import (
	"errors"
	"fmt"
)

// ErrFontNotFound is returned by [FindFont] when no installed font matches
// the query.
var ErrFontNotFound = errors.New("text: no font matches the given query")

// BadFontError wraps a parse failure for font data that was located but
// could not be understood.
type BadFontError struct {
	Err error
}

func (e *BadFontError) Error() string {
	return fmt.Sprintf("text: bad font data: %v", e.Err)
}

func (e *BadFontError) Unwrap() error { return e.Err }
