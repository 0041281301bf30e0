// Package festival is a thread-safe terminal UI library: an
// application paints a rectangular grid of cells and attributes to an
// in-memory buffer, and festival diffs that buffer against what the
// terminal currently shows, emitting only the minimal control bytes
// needed to reconcile the two. It also delivers decoded keyboard and
// resize events on a channel.
package festival

import "festival/internal/model"

// Color, Effect, Attribute, Cell, Cursor, Key, and Event are defined in
// internal/model so that the screen and terminfo packages can share
// them without importing this package (which imports them). These
// aliases re-export the same types under the public API.
type (
	Color     = model.Color
	ColorKind = model.ColorKind
	Effect    = model.Effect
	Attribute = model.Attribute
	Cell      = model.Cell
	Cursor    = model.Cursor
	Key       = model.Key
	Event     = model.Event
	Command   = model.Command
)

// Named colors.
var (
	Default = model.Default
	Black   = model.Black
	Red     = model.Red
	Green   = model.Green
	Yellow  = model.Yellow
	Blue    = model.Blue
	Magenta = model.Magenta
	Cyan    = model.Cyan
	White   = model.White
)

// EightBit and RGB build indexed/true-color Color values.
func EightBit(index uint8) Color    { return model.EightBit(index) }
func RGB(r, g, b uint8) Color       { return model.RGB(r, g, b) }

// Effect bits.
const (
	Bold      = model.Bold
	Dim       = model.Dim
	Underline = model.Underline
	Blink     = model.Blink
	Reverse   = model.Reverse
)

// Keys.
const (
	CtrlA = model.CtrlA
	CtrlB = model.CtrlB
	CtrlC = model.CtrlC
	CtrlD = model.CtrlD
	CtrlE = model.CtrlE
	CtrlF = model.CtrlF
	CtrlG = model.CtrlG
	CtrlH = model.CtrlH
	CtrlI = model.CtrlI
	CtrlJ = model.CtrlJ
	CtrlK = model.CtrlK
	CtrlL = model.CtrlL
	CtrlM = model.CtrlM
	CtrlN = model.CtrlN
	CtrlO = model.CtrlO
	CtrlP = model.CtrlP
	CtrlQ = model.CtrlQ
	CtrlR = model.CtrlR
	CtrlS = model.CtrlS
	CtrlT = model.CtrlT
	CtrlU = model.CtrlU
	CtrlV = model.CtrlV
	CtrlW = model.CtrlW
	CtrlX = model.CtrlX
	CtrlY = model.CtrlY
	CtrlZ = model.CtrlZ
	ESC   = model.ESC
	Space = model.Space

	ArrowUp    = model.ArrowUp
	ArrowDown  = model.ArrowDown
	ArrowLeft  = model.ArrowLeft
	ArrowRight = model.ArrowRight

	Backspace = model.Backspace
	Tab       = model.Tab
	Enter     = model.Enter
)

// Event kinds.
const (
	EventKey    = model.EventKey
	EventChar   = model.EventChar
	EventResize = model.EventResize
)

// Command kinds.
const (
	CmdHideCursor = model.CmdHideCursor
	CmdShowCursor = model.CmdShowCursor
	CmdMoveCursor = model.CmdMoveCursor
	CmdPutChar    = model.CmdPutChar
	CmdResetAttr  = model.CmdResetAttr
	CmdFg         = model.CmdFg
	CmdBg         = model.CmdBg
	CmdEffect     = model.CmdEffect
)

// NewCell builds a Cell holding ch with a default attribute.
func NewCell(ch rune) Cell {
	return Cell{Ch: ch}
}

// WithFg returns a copy of c with its foreground color set.
func (c Cell) WithFg(col Color) Cell {
	c.Attribute.Fg = col
	return c
}

// WithBg returns a copy of c with its background color set.
func (c Cell) WithBg(col Color) Cell {
	c.Attribute.Bg = col
	return c
}

// WithEffect returns a copy of c with its effect bits set.
func (c Cell) WithEffect(e Effect) Cell {
	c.Attribute.Effect = e
	return c
}

// WithAttribute returns a copy of c with its whole attribute replaced.
func (c Cell) WithAttribute(a Attribute) Cell {
	c.Attribute = a
	return c
}
