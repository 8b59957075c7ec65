package fbdraw

import "fmt"

// InvalidColorError reports a malformed color string passed to [ParseHex].
type InvalidColorError struct {
	// Value is the offending input string.
	Value string
	// Reason is a human-readable description of what is wrong with it.
	Reason string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("fbdraw: invalid color string %q: %s", e.Value, e.Reason)
}

// BadImageError wraps a decoding failure from the image codecs used by
// [ImageFromPath] and [ImageFromBytes].
type BadImageError struct {
	Err error
}

func (e *BadImageError) Error() string {
	return fmt.Sprintf("fbdraw: bad image: %v", e.Err)
}

func (e *BadImageError) Unwrap() error { return e.Err }
