package model

// Cell is a single character position on the screen: its rune and the
// visual attribute it is drawn with. The zero value holds rune 0 with
// default attribute; BlankCell is the blank space used for empty
// positions.
type Cell struct {
	Ch        rune
	Attribute Attribute
}

// BlankCell is the default contents of any screen position.
var BlankCell = Cell{Ch: ' '}

// Cursor is the terminal's text cursor: position plus visibility.
type Cursor struct {
	X, Y    int
	Visible bool
}

// DefaultCursor is the initial cursor state of a freshly created screen.
var DefaultCursor = Cursor{X: 0, Y: 0, Visible: true}
