package model

// Key is a closed set of control keys and navigation keys recognized by
// the input decoder. Everything else arrives as a Char event.
type Key int

const (
	CtrlA Key = 0x01 + iota
	CtrlB
	CtrlC
	CtrlD
	CtrlE
	CtrlF
	CtrlG
	CtrlH
	CtrlI
	CtrlJ
	CtrlK
	CtrlL
	CtrlM
	CtrlN
	CtrlO
	CtrlP
	CtrlQ
	CtrlR
	CtrlS
	CtrlT
	CtrlU
	CtrlV
	CtrlW
	CtrlX
	CtrlY
	CtrlZ
	ESC Key = 0x1B
)

const Space Key = 0x20

// Arrow keys have no byte value of their own; they are recognized only
// through a multi-byte terminfo escape sequence, so they are given
// values outside the 0x00-0x20 control range.
const (
	ArrowUp Key = 0x100 + iota
	ArrowDown
	ArrowLeft
	ArrowRight
)

// Aliases for the control keys that double as named keys.
const (
	Backspace = CtrlH
	Tab       = CtrlI
	Enter     = CtrlM
)

// ByteToKey maps a single byte (0x01..0x1A, 0x1B, 0x20) to its Key, or
// reports ok=false for anything else.
func ByteToKey(b byte) (Key, bool) {
	switch {
	case b >= 0x01 && b <= 0x1A:
		return Key(b), true
	case b == 0x1B:
		return ESC, true
	case b == 0x20:
		return Space, true
	default:
		return 0, false
	}
}
