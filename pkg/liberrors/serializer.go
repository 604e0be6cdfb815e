// Package liberrors contains errors returned by the library.
package liberrors

import (
	"fmt"
)

// ErrBadParam is returned when an argument is missing or invalid,
// or when the serializer has not been initialized.
type ErrBadParam struct {
	Reason string
}

// Error implements the error interface.
func (e ErrBadParam) Error() string {
	return fmt.Sprintf("bad parameter: %s", e.Reason)
}

// ErrOutOfMemory is returned when a line does not fit into the remaining buffer.
type ErrOutOfMemory struct {
	Required  int
	Available int
}

// Error implements the error interface.
func (e ErrOutOfMemory) Error() string {
	return fmt.Sprintf("out of memory: line requires %d bytes, %d available",
		e.Required, e.Available)
}

// ErrSnprintf is returned when the number of bytes produced while formatting
// a line differs from its computed size.
type ErrSnprintf struct {
	Expected int
	Written  int
}

// Error implements the error interface.
func (e ErrSnprintf) Error() string {
	return fmt.Sprintf("formatting error: expected %d bytes, written %d",
		e.Expected, e.Written)
}
