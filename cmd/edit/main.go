// Command edit is a minimal single-line text editor: type to insert,
// arrow keys or Ctrl-B/Ctrl-F to move, backspace to delete, ESC to
// quit. The cursor tracks a byte offset into the line but is drawn at
// its display-width column, so it lands correctly next to wide
// characters.
package main

import (
	"strings"
	"unicode/utf8"

	"festival"
)

type editor struct {
	contents strings.Builder
	cursor   int // byte offset into contents.String()
}

func (e *editor) text() string { return e.contents.String() }

func (e *editor) insert(ch rune) {
	s := e.text()
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)

	var next strings.Builder
	next.WriteString(s[:e.cursor])
	next.Write(buf[:n])
	next.WriteString(s[e.cursor:])
	e.contents = next
	e.cursor += n
}

func (e *editor) backspace() {
	s := e.text()
	if e.cursor == 0 {
		return
	}
	r, size := utf8.DecodeLastRuneInString(s[:e.cursor])
	if r == utf8.RuneError {
		return
	}
	var next strings.Builder
	next.WriteString(s[:e.cursor-size])
	next.WriteString(s[e.cursor:])
	e.contents = next
	e.cursor -= size
}

func (e *editor) moveLeft() {
	s := e.text()
	if e.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s[:e.cursor])
	e.cursor -= size
}

func (e *editor) moveRight() {
	s := e.text()
	if e.cursor >= len(s) {
		return
	}
	_, size := utf8.DecodeRuneInString(s[e.cursor:])
	e.cursor += size
}

func (e *editor) show(f *festival.Handle) {
	f.WithScreen(func(s *festival.ScreenGuard) {
		s.Clear()
		text := e.text()
		s.Print(0, 0, text, festival.Attribute{})
		cursorX := festival.StringWidth(text[:e.cursor])
		s.MoveCursor(cursorX, 0)
	})
}

func main() {
	f, events, err := festival.Hold()
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var ed editor
	ed.show(f)

	for ev := range events {
		switch ev.Kind {
		case festival.EventChar:
			ed.insert(ev.Ch)
		case festival.EventKey:
			switch ev.Key {
			case festival.ArrowLeft, festival.CtrlB:
				ed.moveLeft()
			case festival.ArrowRight, festival.CtrlF:
				ed.moveRight()
			case festival.Backspace:
				ed.backspace()
			case festival.ESC:
				return
			}
		}
		ed.show(f)
	}
}
