// Command finder is an incremental substring finder over lines read
// from stdin: type to filter, arrow keys (or Ctrl-P/N) to change the
// selection, Enter to print the selected line to stdout and exit, ESC
// to quit without a result.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"festival"
)

type finder struct {
	needle     string
	cursor     int // byte offset into needle
	candidates []string
	matches    []string
	selected   int
}

func newFinder(candidates []string) *finder {
	return &finder{candidates: candidates, matches: append([]string(nil), candidates...)}
}

func (fd *finder) find() {
	fd.matches = fd.matches[:0]
	for _, c := range fd.candidates {
		if strings.Contains(c, fd.needle) {
			fd.matches = append(fd.matches, c)
		}
	}
	if len(fd.matches) == 0 {
		fd.selected = 0
	} else if fd.selected >= len(fd.matches) {
		fd.selected = len(fd.matches) - 1
	}
}

func (fd *finder) insert(ch rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	fd.needle = fd.needle[:fd.cursor] + string(buf[:n]) + fd.needle[fd.cursor:]
	fd.cursor += n
	fd.find()
}

func (fd *finder) backspace() {
	if fd.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(fd.needle[:fd.cursor])
	fd.needle = fd.needle[:fd.cursor-size] + fd.needle[fd.cursor:]
	fd.cursor -= size
	fd.find()
}

func (fd *finder) left() {
	if fd.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(fd.needle[:fd.cursor])
	fd.cursor -= size
}

func (fd *finder) right() {
	if fd.cursor >= len(fd.needle) {
		return
	}
	_, size := utf8.DecodeRuneInString(fd.needle[fd.cursor:])
	fd.cursor += size
}

func (fd *finder) up() {
	if fd.selected > 0 {
		fd.selected--
	}
}

func (fd *finder) down() {
	if fd.selected < len(fd.matches)-1 {
		fd.selected++
	}
}

func (fd *finder) get() (string, bool) {
	if fd.selected >= len(fd.matches) {
		return "", false
	}
	return fd.matches[fd.selected], true
}

func (fd *finder) showNeedle(s *festival.ScreenGuard) {
	s.Print(0, 0, fd.needle, festival.Attribute{})
	w := festival.StringWidth(fd.needle)
	width, _ := s.Size()
	for i := w; i < width; i++ {
		s.PutCell(i, 0, festival.NewCell(' '))
	}
	x := festival.StringWidth(fd.needle[:fd.cursor])
	s.MoveCursor(x, 0)
}

func (fd *finder) showCandidates(s *festival.ScreenGuard) {
	for i, m := range fd.matches {
		row := i + 1
		attr := festival.Attribute{}
		marker := "  "
		if i == fd.selected {
			attr.Effect = festival.Bold
			marker = "> "
		}
		s.Print(0, row, marker, attr)

		before, matched, after := m, "", ""
		if idx := strings.Index(m, fd.needle); idx >= 0 {
			before = m[:idx]
			matched = m[idx : idx+len(fd.needle)]
			after = m[idx+len(fd.needle):]
		}
		col := 2
		s.Print(col, row, before, attr)
		col += festival.StringWidth(before)

		matchAttr := attr
		matchAttr.Fg = festival.Red
		s.Print(col, row, matched, matchAttr)
		col += festival.StringWidth(matched)

		s.Print(col, row, after, attr)
	}
}

func (fd *finder) show(f *festival.Handle) {
	f.WithScreen(func(s *festival.ScreenGuard) {
		s.Clear()
		fd.showNeedle(s)
		fd.showCandidates(s)
	})
}

func main() {
	var candidates []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		candidates = append(candidates, scanner.Text())
	}

	fd := newFinder(candidates)

	f, events, err := festival.Hold()
	if err != nil {
		panic(err)
	}
	fd.show(f)

	var result string
	var haveResult bool

loop:
	for ev := range events {
		switch ev.Kind {
		case festival.EventChar:
			fd.insert(ev.Ch)
		case festival.EventKey:
			switch ev.Key {
			case festival.ESC:
				break loop
			case festival.Backspace:
				fd.backspace()
			case festival.ArrowLeft, festival.CtrlB:
				fd.left()
			case festival.ArrowRight, festival.CtrlF:
				fd.right()
			case festival.ArrowUp, festival.CtrlP:
				fd.up()
			case festival.ArrowDown, festival.CtrlN:
				fd.down()
			case festival.Enter:
				result, haveResult = fd.get()
				break loop
			}
		}
		fd.show(f)
	}

	f.Close()
	if haveResult {
		fmt.Println(result)
	}
}
