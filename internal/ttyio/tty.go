// Package ttyio holds the POSIX tty plumbing: opening /dev/tty for
// read and write, raw-mode setup/teardown, and window-size queries.
// It deliberately knows nothing about screens, commands, or events —
// those live in the festival package, which composes this package's
// primitives with termscreen and termcap.
package ttyio

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// OpenWrite opens /dev/tty for writing only.
func OpenWrite() (*os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "ttyio: open /dev/tty for write")
	}
	return f, nil
}

// OpenRead opens /dev/tty for reading only.
func OpenRead() (*os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "ttyio: open /dev/tty for read")
	}
	return f, nil
}

// RawState is the terminal's line-discipline settings captured before
// switching to raw mode, so they can be restored later.
type RawState struct {
	state *term.State
}

// EnableRaw puts f's file descriptor into raw mode (no canonical
// input, no echo, no signal generation, no extended processing, 8-bit
// chars, VMIN=1/VTIME=0 — the standard cfmakeraw profile) and returns
// the previous settings.
func EnableRaw(f *os.File) (*RawState, error) {
	s, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, errors.Wrap(err, "ttyio: enable raw mode")
	}
	return &RawState{state: s}, nil
}

// DisableRaw restores the settings captured by EnableRaw. A nil
// receiver or state is a silent no-op, since restoration at teardown
// is always best-effort.
func (s *RawState) DisableRaw(f *os.File) error {
	if s == nil || s.state == nil {
		return nil
	}
	return term.Restore(int(f.Fd()), s.state)
}

// WindowSize queries f's current terminal dimensions in columns and
// rows.
func WindowSize(f *os.File) (width, height int, err error) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "ttyio: get window size")
	}
	return w, h, nil
}
