package festival

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"

	"festival/internal/termcap"
	"festival/internal/termscreen"
	"festival/internal/ttyio"
)

// Handle is the top-level festival resource: it owns the tty, the
// terminfo adapter, and the screen, and drives the background input
// and resize workers. Create one with Hold; release it with Close
// (typically via defer) to restore the terminal unconditionally.
type Handle struct {
	ttyOut *os.File
	ttyIn  *os.File
	raw    *ttyio.RawState

	adapter *termcap.Adapter

	screenMu sync.Mutex
	screen   *termscreen.Screen

	writeMu sync.Mutex
	out     *bufio.Writer

	events   chan Event
	done     chan struct{}
	closeMu  sync.Mutex
	closed   bool
}

// Hold acquires /dev/tty, switches it to raw mode, enters the
// alternate screen, and starts the input and resize workers. The
// returned channel delivers decoded events until the handle is
// closed.
func Hold() (*Handle, <-chan Event, error) {
	ttyOut, err := ttyio.OpenWrite()
	if err != nil {
		return nil, nil, err
	}
	ttyIn, err := ttyio.OpenRead()
	if err != nil {
		ttyOut.Close()
		return nil, nil, err
	}

	raw, err := ttyio.EnableRaw(ttyOut)
	if err != nil {
		ttyOut.Close()
		ttyIn.Close()
		return nil, nil, err
	}

	adapter, err := termcap.Load()
	if err != nil {
		raw.DisableRaw(ttyOut)
		ttyOut.Close()
		ttyIn.Close()
		return nil, nil, errors.Wrap(err, "festival: hold")
	}

	w, h, err := ttyio.WindowSize(ttyOut)
	if err != nil {
		raw.DisableRaw(ttyOut)
		ttyOut.Close()
		ttyIn.Close()
		return nil, nil, err
	}

	h2 := &Handle{
		ttyOut:  ttyOut,
		ttyIn:   ttyIn,
		raw:     raw,
		adapter: adapter,
		screen:  termscreen.New(w, h),
		out:     bufio.NewWriter(ttyOut),
		events:  make(chan Event),
		done:    make(chan struct{}),
	}

	if err := adapter.EnterScreen(h2.out); err != nil {
		h2.Close()
		return nil, nil, err
	}
	if err := h2.out.Flush(); err != nil {
		h2.Close()
		return nil, nil, err
	}

	arrows := adapter.ArrowSequences()
	startInputReader(ttyIn, arrows, h2.events, h2.done)
	startResizeWatcher(ttyOut, h2.screen, &h2.screenMu, h2.events, h2.done)

	return h2, h2.events, nil
}

// Close reverses setup unconditionally: shows the cursor, exits
// keypad mode and the alternate screen, resets attributes, and
// restores the original terminal mode. All errors are swallowed —
// restoration is best-effort, matching the spec's drop semantics.
func (h *Handle) Close() {
	h.closeMu.Lock()
	defer h.closeMu.Unlock()
	if h.closed {
		return
	}
	h.closed = true

	close(h.done)

	h.writeMu.Lock()
	if err := h.adapter.ExitScreen(h.out); err != nil {
		fmt.Fprintf(os.Stderr, "festival: warning: exit screen: %v\n", err)
	}
	if err := h.out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "festival: warning: flush on close: %v\n", err)
	}
	h.writeMu.Unlock()

	if err := h.raw.DisableRaw(h.ttyOut); err != nil {
		fmt.Fprintf(os.Stderr, "festival: warning: restore terminal mode: %v\n", err)
	}
	h.ttyIn.Close()
	h.ttyOut.Close()
}

// LockScreen blocks until the screen mutex is free and returns a
// scoped guard exposing the screen mutators. The guard auto-flushes
// on Close if the caller hasn't already called Flush.
func (h *Handle) LockScreen() *ScreenGuard {
	h.screenMu.Lock()
	return &ScreenGuard{h: h}
}

// WithScreen is the higher-order convenience form of LockScreen+defer
// Close, useful for callers who'd rather not manage the defer
// themselves.
func (h *Handle) WithScreen(f func(*ScreenGuard)) {
	g := h.LockScreen()
	defer g.Close()
	f(g)
}

// writeCommands serializes cmds through the terminfo adapter to the
// buffered tty writer, then flushes the writer to the tty. Holds
// writeMu so a concurrent Close can't interleave the exit sequence
// with an in-flight flush.
func (h *Handle) writeCommands(cmds []Command) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for _, cmd := range cmds {
		if err := h.adapter.Write(h.out, cmd); err != nil {
			return err
		}
	}
	return h.out.Flush()
}

// ScreenGuard is a scoped handle on the screen, held while the screen
// mutex is locked. Obtain one with Handle.LockScreen and release it
// with Close (usually via defer).
type ScreenGuard struct {
	h       *Handle
	flushed bool
}

// Flush computes the minimal command delta and writes it to the tty.
// Calling Flush more than once is safe; only the first call in a
// given lock scope does any work, matching the guard's auto-flush
// behavior on Close.
func (g *ScreenGuard) Flush() error {
	if g.flushed {
		return nil
	}
	g.flushed = true
	cmds := g.h.screen.FlushCommands()
	return g.h.writeCommands(cmds)
}

// Close flushes (if not already flushed) and releases the screen
// mutex. It is the caller's responsibility to call Close exactly
// once per LockScreen, typically via defer.
func (g *ScreenGuard) Close() {
	if !g.flushed {
		if err := g.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "festival: warning: flush on guard close: %v\n", err)
		}
	}
	g.h.screenMu.Unlock()
}

// Clear blanks every cell's rune, leaving attributes untouched.
func (g *ScreenGuard) Clear() { g.h.screen.Clear() }

// MoveCursor sets the desired cursor position.
func (g *ScreenGuard) MoveCursor(x, y int) { g.h.screen.MoveCursor(x, y) }

// HideCursor marks the desired cursor invisible.
func (g *ScreenGuard) HideCursor() { g.h.screen.HideCursor() }

// ShowCursor marks the desired cursor visible.
func (g *ScreenGuard) ShowCursor() { g.h.screen.ShowCursor() }

// Print writes s starting at (x,y) with attr, advancing by each
// rune's display width. It does not wrap.
func (g *ScreenGuard) Print(x, y int, s string, attr Attribute) {
	g.h.screen.Print(x, y, s, attr)
}

// PutCell overwrites the cell at (x,y). Out-of-bounds writes are
// silent no-ops.
func (g *ScreenGuard) PutCell(x, y int, c Cell) {
	g.h.screen.PutCell(x, y, c)
}

// Size returns the screen's current dimensions.
func (g *ScreenGuard) Size() (width, height int) {
	return g.h.screen.Size()
}
