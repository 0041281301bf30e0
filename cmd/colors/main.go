// Command colors prints each named ANSi color as both a foreground
// and a background swatch, then waits for ESC to quit.
package main

import "festival"

func main() {
	f, events, err := festival.Hold()
	if err != nil {
		panic(err)
	}
	defer f.Close()

	named := []struct {
		name  string
		color festival.Color
	}{
		{"Black", festival.Black},
		{"Red", festival.Red},
		{"Green", festival.Green},
		{"Yellow", festival.Yellow},
		{"Blue", festival.Blue},
		{"Magenta", festival.Magenta},
		{"Cyan", festival.Cyan},
		{"White", festival.White},
	}

	f.WithScreen(func(s *festival.ScreenGuard) {
		row := 0
		for _, c := range named {
			s.Print(0, row, "Foreground "+c.name, festival.Attribute{Fg: c.color})
			row++
		}
		for _, c := range named {
			s.Print(0, row, "Background "+c.name, festival.Attribute{Bg: c.color})
			row++
		}
	})

	for ev := range events {
		if ev.Kind == festival.EventKey && ev.Key == festival.ESC {
			return
		}
	}
}
