// Package termcap translates the festival command stream into the
// terminal control bytes that realize it, using a terminfo capability
// lookup for the capabilities that have no fixed, portable escape
// sequence, and fixed escape sequences everywhere the spec pins the
// byte format regardless of what the terminfo entry says.
package termcap

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/pkg/errors"

	"festival/internal/model"
)

// baud is the line speed passed to terminfo.Terminfo.TPuts for pacing
// any capability strings that carry padding delays. Pseudo-ttys have
// no real line speed; this is the same stand-in rate tcell's own
// Screen implementations fall back to.
const baud = 38400

// Adapter maps Command values onto terminal control bytes.
type Adapter struct {
	ti *terminfo.Terminfo

	arrowUp, arrowDown, arrowLeft, arrowRight []byte
}

// Load looks up the terminfo entry named by $TERM. A missing or
// unrecognized terminal definition is a TerminfoError.
func Load() (*Adapter, error) {
	ti, err := terminfo.LookupTerminfo(os.Getenv("TERM"))
	if err != nil {
		return nil, errors.Wrap(err, "termcap: terminfo lookup failed")
	}
	a := &Adapter{ti: ti}
	// Cache the arrow-key escape sequences once, as recommended: the
	// decoder consults these on every escape parse.
	a.arrowUp = []byte(ti.KeyUp)
	a.arrowDown = []byte(ti.KeyDown)
	a.arrowLeft = []byte(ti.KeyLeft)
	a.arrowRight = []byte(ti.KeyRight)
	return a, nil
}

// ArrowSequences returns the cached terminfo byte strings for the four
// arrow keys, in the fixed UP/DOWN/LEFT/RIGHT check order the decoder
// uses. Entries with no capability are empty and never match.
func (a *Adapter) ArrowSequences() [4][]byte {
	return [4][]byte{a.arrowUp, a.arrowDown, a.arrowLeft, a.arrowRight}
}

// EnterScreen enters the alternate screen, enables keypad transmit
// mode, and clears — the fixed sequence Hold() performs at startup.
func (a *Adapter) EnterScreen(w io.Writer) error {
	if err := a.puts(w, a.ti.EnterCA); err != nil {
		return err
	}
	if err := a.puts(w, a.ti.EnterKeypad); err != nil {
		return err
	}
	return a.puts(w, a.ti.Clear)
}

// ExitScreen reverses EnterScreen, plus resets attributes and shows
// the cursor. Used unconditionally at teardown; callers swallow its
// error since restoration is best-effort.
func (a *Adapter) ExitScreen(w io.Writer) error {
	a.puts(w, a.ti.ShowCursor)
	a.puts(w, a.ti.ExitKeypad)
	a.puts(w, a.ti.AttrOff)
	return a.puts(w, a.ti.ExitCA)
}

// puts writes a terminfo capability string if one is defined, through
// Terminfo.TPuts so any padding delays it encodes are honored. A
// missing optional capability is a silent no-op, never an error.
func (a *Adapter) puts(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	a.ti.TPuts(w, s, baud)
	return nil
}

// Write translates a single Command to bytes and writes them to w.
func (a *Adapter) Write(w io.Writer, cmd model.Command) error {
	switch cmd.Kind {
	case model.CmdHideCursor:
		return a.puts(w, a.ti.HideCursor)
	case model.CmdShowCursor:
		return a.puts(w, a.ti.ShowCursor)
	case model.CmdMoveCursor:
		// Fixed format, independent of terminfo: ESC [ (y+1) ; (x+1) H
		_, err := fmt.Fprintf(w, "\x1b[%d;%dH", cmd.Y+1, cmd.X+1)
		return err
	case model.CmdPutChar:
		_, err := io.WriteString(w, string(cmd.Ch))
		return err
	case model.CmdResetAttr:
		return a.puts(w, a.ti.AttrOff)
	case model.CmdFg:
		return a.writeColor(w, cmd.Col, false)
	case model.CmdBg:
		return a.writeColor(w, cmd.Col, true)
	case model.CmdEffect:
		return a.writeEffect(w, cmd.Eff)
	default:
		return nil
	}
}

// writeColor emits the SGR sequence for a foreground or background
// color. Foreground uses 30-37/39/38;5;n/38;2;r;g;b; background
// mirrors with 40-47/49/48;5;n/48;2;r;g;b.
func (a *Adapter) writeColor(w io.Writer, c model.Color, bg bool) error {
	base := 30
	defaultCode := 39
	extPrefix := "38"
	if bg {
		base = 40
		defaultCode = 49
		extPrefix = "48"
	}

	var err error
	switch c.Kind {
	case model.ColorDefault:
		_, err = fmt.Fprintf(w, "\x1b[%dm", defaultCode)
	case model.ColorEightBit:
		_, err = fmt.Fprintf(w, "\x1b[%s;5;%dm", extPrefix, c.Index)
	case model.ColorRGB:
		_, err = fmt.Fprintf(w, "\x1b[%s;2;%d;%d;%dm", extPrefix, c.R, c.G, c.B)
	default:
		// Named ANSI colors are laid out Black..White == 1..8 in Kind,
		// mapping directly onto SGR 30-37 / 40-47 offsets.
		offset := int(c.Kind) - int(model.ColorBlack)
		_, err = fmt.Fprintf(w, "\x1b[%dm", base+offset)
	}
	return err
}

// writeEffect emits the terminfo string for each effect bit present,
// in the fixed order Bold, Dim, Underline, Blink, Reverse.
func (a *Adapter) writeEffect(w io.Writer, eff model.Effect) error {
	order := []struct {
		bit model.Effect
		cap string
	}{
		{model.Bold, a.ti.Bold},
		{model.Dim, a.ti.Dim},
		{model.Underline, a.ti.Underline},
		{model.Blink, a.ti.Blink},
		{model.Reverse, a.ti.Reverse},
	}
	for _, o := range order {
		if eff.Has(o.bit) {
			if err := a.puts(w, o.cap); err != nil {
				return err
			}
		}
	}
	return nil
}
