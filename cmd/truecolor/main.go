// Command truecolor paints a horizontal RGB gradient across every row
// using 24-bit background colors, demonstrating the true-color path
// of the SGR encoder. It exits on the first event.
package main

import "festival"

func main() {
	f, events, err := festival.Hold()
	if err != nil {
		panic(err)
	}
	defer f.Close()

	f.WithScreen(func(s *festival.ScreenGuard) {
		s.HideCursor()
		w, h := s.Size()
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				r := j * 255 / w
				var g int
				if 2*j < w {
					g = 510 * j / w
				} else {
					g = 510 - 510*j/w
				}
				b := 255 - j*255/w
				cell := festival.NewCell(' ').WithBg(festival.RGB(uint8(r), uint8(g), uint8(b)))
				s.PutCell(j, i, cell)
			}
		}
	})

	<-events
}
