package terminal

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to an
// interactive terminal.
var ErrNotTerminal = errors.New("not an interactive terminal")

// InitError reports a failure to take over the terminal at startup.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("terminal init: %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// IOError reports a failure while the terminal is in use: drawing a frame,
// reading input, or restoring the terminal afterwards.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal io: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
