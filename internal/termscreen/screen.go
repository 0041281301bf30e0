// Package termscreen implements the double-buffered cell grid and the
// minimal-delta diff engine that turns a sequence of in-memory writes
// into the smallest ordered command stream needed to reconcile the
// terminal's visible state with it.
package termscreen

import (
	"github.com/mattn/go-runewidth"

	"festival/internal/model"
)

// Screen owns the desired cell grid, the shadow grid tracking what the
// terminal currently shows, and the desired/painted cursor pair. It is
// not safe for concurrent use by itself; callers serialize access (the
// festival package does so with a mutex).
type Screen struct {
	Width, Height int

	cells        []model.Cell
	paintedCells []model.Cell

	cursor        model.Cursor
	paintedCursor model.Cursor
}

// New creates a screen of the given size, every cell blank.
func New(width, height int) *Screen {
	s := &Screen{
		Width:         width,
		Height:        height,
		cells:         newBlankGrid(width, height),
		paintedCells:  newBlankGrid(width, height),
		cursor:        model.DefaultCursor,
		paintedCursor: model.DefaultCursor,
	}
	return s
}

func newBlankGrid(width, height int) []model.Cell {
	g := make([]model.Cell, width*height)
	for i := range g {
		g[i] = model.BlankCell
	}
	return g
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, false
	}
	return x + y*s.Width, true
}

// PutCell overwrites the cell at (x,y). Out-of-bounds writes are
// silent no-ops.
func (s *Screen) PutCell(x, y int, c model.Cell) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = c
	}
}

// Cell returns the cell currently at (x,y), or the zero Cell if out
// of bounds.
func (s *Screen) Cell(x, y int) model.Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return model.Cell{}
}

// Print writes the runes of s starting at (x,y) with the given
// attribute, advancing x by the display width of each rune (1 or 2).
// It does not wrap; runes that fall off the right edge are dropped.
func (s *Screen) Print(x, y int, str string, attr model.Attribute) {
	for _, c := range str {
		s.PutCell(x, y, model.Cell{Ch: c, Attribute: attr})
		x += runewidth.RuneWidth(c)
	}
}

// Clear blanks every cell's rune, leaving attributes untouched. The
// painted shadow is deliberately left alone: the next flush diffs
// against it and emits the erasing writes. Clearing the shadow here
// too would make the diff see no change and the terminal would never
// actually be cleared.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i].Ch = ' '
	}
}

// Resize reallocates the cell grids to the new dimensions, copying the
// top-left min(w,Width) x min(h,Height) sub-rectangle of both the
// desired and painted grids. Cells outside the preserved rectangle are
// defaults.
func (s *Screen) Resize(width, height int) {
	s.cells = s.copyGrid(s.cells, width, height)
	s.paintedCells = s.copyGrid(s.paintedCells, width, height)
	s.Width = width
	s.Height = height
}

func (s *Screen) copyGrid(original []model.Cell, width, height int) []model.Cell {
	next := newBlankGrid(width, height)
	minW, minH := width, height
	if s.Width < minW {
		minW = s.Width
	}
	if s.Height < minH {
		minH = s.Height
	}
	for y := 0; y < minH; y++ {
		srcStart := y * s.Width
		dstStart := y * width
		copy(next[dstStart:dstStart+minW], original[srcStart:srcStart+minW])
	}
	return next
}

// MoveCursor sets the desired cursor position.
func (s *Screen) MoveCursor(x, y int) {
	s.cursor.X, s.cursor.Y = x, y
}

// HideCursor marks the desired cursor invisible.
func (s *Screen) HideCursor() {
	s.cursor.Visible = false
}

// ShowCursor marks the desired cursor visible.
func (s *Screen) ShowCursor() {
	s.cursor.Visible = true
}

// Size returns the current dimensions.
func (s *Screen) Size() (int, int) {
	return s.Width, s.Height
}

// FlushCommands computes and returns the ordered minimal command
// sequence that reconciles the terminal's visible state with the
// current cells/cursor, and updates the painted shadow to match what
// was just emitted.
func (s *Screen) FlushCommands() []model.Command {
	var cmds []model.Command
	cmds = append(cmds, model.Command{Kind: model.CmdResetAttr})
	lastAttr := model.Attribute{}
	lastX, lastY := -1, -1
	prevWasWide := false

	for y := 0; y < s.Height; y++ {
		prevWasWide = false
		for x := 0; x < s.Width; x++ {
			i, _ := s.index(x, y)

			if prevWasWide {
				prevWasWide = false
				s.paintedCells[i] = model.Cell{Ch: ' ', Attribute: s.paintedCells[i-1].Attribute}
				continue
			}

			if s.paintedCells[i] == s.cells[i] {
				continue
			}

			cell := s.cells[i]

			if cell.Attribute != lastAttr {
				cmds = append(cmds, model.Command{Kind: model.CmdResetAttr})
				cmds = append(cmds, model.Command{Kind: model.CmdFg, Col: cell.Attribute.Fg})
				cmds = append(cmds, model.Command{Kind: model.CmdBg, Col: cell.Attribute.Bg})
				cmds = append(cmds, model.Command{Kind: model.CmdEffect, Eff: cell.Attribute.Effect})
				lastAttr = cell.Attribute
			}

			if lastX != x || lastY != y {
				cmds = append(cmds, model.Command{Kind: model.CmdMoveCursor, X: x, Y: y})
			}

			w := runewidth.RuneWidth(cell.Ch)
			if w == 2 && x == s.Width-1 {
				cell.Ch = ' '
				w = 1
			}

			cmds = append(cmds, model.Command{Kind: model.CmdPutChar, Ch: cell.Ch})
			lastX, lastY = x+w, y
			if w == 2 {
				prevWasWide = true
			}

			s.paintedCells[i] = cell
		}
	}

	if s.cursor.Visible && !s.paintedCursor.Visible {
		cmds = append(cmds, model.Command{Kind: model.CmdShowCursor})
	} else if !s.cursor.Visible && s.paintedCursor.Visible {
		cmds = append(cmds, model.Command{Kind: model.CmdHideCursor})
	}
	cmds = append(cmds, model.Command{Kind: model.CmdMoveCursor, X: s.cursor.X, Y: s.cursor.Y})
	s.paintedCursor = s.cursor

	return cmds
}
