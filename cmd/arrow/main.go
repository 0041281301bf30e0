// Command arrow moves a one-character cursor around the screen with
// the arrow keys (or their Ctrl-N/P/B/F emacs-style aliases) and
// writes whatever you type at its position. Press q or ESC to quit.
package main

import (
	"festival"
)

func main() {
	f, events, err := festival.Hold()
	if err != nil {
		panic(err)
	}
	defer f.Close()

	x, y := 0, 0

	for ev := range events {
		switch ev.Kind {
		case festival.EventChar:
			if ev.Ch == 'q' {
				return
			}
			f.WithScreen(func(s *festival.ScreenGuard) {
				s.PutCell(x, y, festival.NewCell(ev.Ch))
			})
		case festival.EventKey:
			switch ev.Key {
			case festival.ESC:
				return
			case festival.ArrowUp, festival.CtrlP:
				y--
			case festival.ArrowDown, festival.CtrlN:
				y++
			case festival.ArrowLeft, festival.CtrlB:
				x--
			case festival.ArrowRight, festival.CtrlF:
				x++
			default:
				continue
			}
			f.WithScreen(func(s *festival.ScreenGuard) {
				s.MoveCursor(x, y)
			})
		}
	}
}
