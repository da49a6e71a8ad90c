// Package terminal owns the process-wide terminal mode.
//
// A Session snapshots the terminal before the UI switches it into raw
// mode, and Release puts everything back: alternate screen, mouse capture,
// cursor visibility and the original line discipline. Callers pair the two:
//
//	sess, err := terminal.Acquire(os.Stdin, os.Stdout)
//	if err != nil {
//		return err
//	}
//	defer sess.Release()
package terminal

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Session is a held terminal. It is not safe for concurrent use.
type Session struct {
	fd       int
	state    *term.State
	out      *termenv.Output
	released bool
}

// Acquire checks that in and out are interactive terminals and records the
// current mode of in so it can be restored by Release.
func Acquire(in, out *os.File) (*Session, error) {
	for _, f := range []*os.File{in, out} {
		if f == nil {
			return nil, &InitError{Op: "check tty", Err: ErrNotTerminal}
		}
		if !IsTerminal(f) {
			return nil, &InitError{Op: "check tty " + f.Name(), Err: ErrNotTerminal}
		}
	}

	fd := int(in.Fd())
	state, err := term.GetState(fd)
	if err != nil {
		return nil, &InitError{Op: "snapshot mode", Err: err}
	}

	return &Session{
		fd:    fd,
		state: state,
		out:   termenv.NewOutput(out),
	}, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the current width and height of the session's terminal.
func (s *Session) Size() (width, height int, err error) {
	return term.GetSize(s.fd)
}

// Release leaves the alternate screen, stops mouse reporting, shows the
// cursor and restores the recorded mode. Calls after the first are no-ops,
// so it is safe to defer even when the UI already cleaned up after itself.
func (s *Session) Release() error {
	if s == nil || s.released {
		return nil
	}
	s.released = true

	if s.out != nil {
		s.out.ExitAltScreen()
		s.out.DisableMouseCellMotion()
		s.out.ShowCursor()
	}

	if s.state != nil {
		if err := term.Restore(s.fd, s.state); err != nil {
			return &IOError{Op: "restore mode", Err: err}
		}
	}
	return nil
}

// Released reports whether Release has run.
func (s *Session) Released() bool {
	return s != nil && s.released
}
