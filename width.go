package festival

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the number of terminal columns r occupies: 1
// for most characters, 2 for East-Asian wide and full-width
// characters.
func DisplayWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the sum of DisplayWidth over every rune in s.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += DisplayWidth(r)
	}
	return n
}
