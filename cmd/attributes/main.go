// Command attributes demonstrates every named color as foreground and
// background, plus every text effect, each on its own row.
package main

import "festival"

func main() {
	f, events, err := festival.Hold()
	if err != nil {
		panic(err)
	}
	defer f.Close()

	colors := []festival.Color{
		festival.Black, festival.Red, festival.Green, festival.Yellow,
		festival.Blue, festival.Magenta, festival.Cyan, festival.White,
	}

	f.WithScreen(func(s *festival.ScreenGuard) {
		row := 0
		for _, c := range colors {
			s.Print(0, row, "0123456789", festival.Attribute{Fg: c})
			row++
			s.Print(0, row, "0123456789", festival.Attribute{Bg: c})
			row++
		}

		effects := []festival.Effect{
			festival.Bold, festival.Dim, festival.Underline, festival.Blink, festival.Reverse,
		}
		for _, e := range effects {
			s.Print(0, row, "0123456789", festival.Attribute{Effect: e})
			row++
		}
	})

	for ev := range events {
		if ev.Kind == festival.EventKey && ev.Key == festival.ESC {
			return
		}
	}
}
