// Command color256 prints a 16x16 grid of every indexed-color
// (EightBit) palette entry, labeled with its hex index. It exits on
// the first event.
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
		for i := 0; i < 16; i++ {
			for j := 0; j < 16; j++ {
				v := uint8(i*16 + j)
				s.Print(j*3, i, hex2(v), festival.Attribute{Fg: festival.EightBit(v)})
			}
		}
	})

	<-events
}

func hex2(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0xF]})
}
