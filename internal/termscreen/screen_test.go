package termscreen

import (
	"testing"

	"festival/internal/model"
)

func TestFlushCommandsIdempotent(t *testing.T) {
	s := New(10, 3)
	s.PutCell(2, 1, model.Cell{Ch: 'x'})
	s.Print(0, 0, "hi", model.Attribute{Fg: model.Red})

	first := s.FlushCommands()
	if len(first) == 0 {
		t.Fatal("expected commands on first flush")
	}

	second := s.FlushCommands()
	for _, cmd := range second {
		if cmd.Kind == model.CmdPutChar {
			t.Fatalf("unexpected PutChar on second flush with no writes between: %+v", cmd)
		}
	}
}

func TestPutCellOutOfBoundsIsNoop(t *testing.T) {
	s := New(5, 5)
	s.PutCell(-1, 0, model.Cell{Ch: 'a'})
	s.PutCell(0, -1, model.Cell{Ch: 'a'})
	s.PutCell(5, 0, model.Cell{Ch: 'a'})
	s.PutCell(0, 5, model.Cell{Ch: 'a'})

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c := s.Cell(x, y); c.Ch != ' ' && c.Ch != 0 {
				t.Fatalf("cell (%d,%d) unexpectedly written: %+v", x, y, c)
			}
		}
	}
}

func TestResizePreservesTopLeftSubrect(t *testing.T) {
	s := New(4, 4)
	s.PutCell(0, 0, model.Cell{Ch: 'a'})
	s.PutCell(1, 1, model.Cell{Ch: 'b'})
	s.PutCell(3, 3, model.Cell{Ch: 'z'})

	s.Resize(2, 2)

	if got := s.Cell(0, 0); got.Ch != 'a' {
		t.Errorf("Cell(0,0) = %+v, want 'a'", got)
	}
	if got := s.Cell(1, 1); got.Ch != 'b' {
		t.Errorf("Cell(1,1) = %+v, want 'b'", got)
	}
	if w, h := s.Size(); w != 2 || h != 2 {
		t.Errorf("Size() = (%d,%d), want (2,2)", w, h)
	}
}

func TestResizeGrowPreservesOriginal(t *testing.T) {
	s := New(2, 2)
	s.PutCell(1, 1, model.Cell{Ch: 'q'})
	s.Resize(5, 5)

	if got := s.Cell(1, 1); got.Ch != 'q' {
		t.Errorf("Cell(1,1) = %+v, want 'q'", got)
	}
	if got := s.Cell(4, 4); got.Ch != ' ' {
		t.Errorf("Cell(4,4) = %+v, want blank", got)
	}
}

func TestWideCharEdgeClip(t *testing.T) {
	s := New(3, 1)
	// A full-width rune placed in the last column would overrun the
	// grid; FlushCommands must clip it to a blank instead of emitting
	// a 2-wide glyph off the edge.
	s.PutCell(2, 0, model.Cell{Ch: 'あ'}) // hiragana "a", width 2

	cmds := s.FlushCommands()
	found := false
	for _, cmd := range cmds {
		if cmd.Kind == model.CmdPutChar {
			found = true
			if cmd.Ch == 'あ' {
				t.Errorf("wide rune at last column was not clipped: %+v", cmd)
			}
		}
	}
	if !found {
		t.Fatal("expected at least one PutChar command")
	}
}

func TestWideCharMarksRightHalfInShadow(t *testing.T) {
	s := New(4, 1)
	s.PutCell(0, 0, model.Cell{Ch: 'あ'}) // width 2, occupies columns 0 and 1

	s.FlushCommands()

	// The shadow's right-half cell must be a blank space sharing the
	// wide rune's attribute, so a later single-width write there is
	// detected as a change instead of being silently skipped.
	right := s.paintedCells[1]
	if right.Ch != ' ' {
		t.Errorf("shadow right-half Ch = %q, want blank", right.Ch)
	}

	s.PutCell(1, 0, model.Cell{Ch: 'x'})
	cmds := s.FlushCommands()
	changed := false
	for _, cmd := range cmds {
		if cmd.Kind == model.CmdPutChar && cmd.Ch == 'x' {
			changed = true
		}
	}
	if !changed {
		t.Fatal("expected right-half overwrite to produce a PutChar command")
	}
}

func TestAttributeChangeIsBatched(t *testing.T) {
	s := New(5, 1)
	attr := model.Attribute{Fg: model.Red, Bg: model.Blue, Effect: model.Bold}
	s.PutCell(0, 0, model.Cell{Ch: 'a', Attribute: attr})
	s.PutCell(1, 0, model.Cell{Ch: 'b', Attribute: attr})

	cmds := s.FlushCommands()
	fgCount := 0
	for _, cmd := range cmds {
		if cmd.Kind == model.CmdFg {
			fgCount++
		}
	}
	if fgCount != 1 {
		t.Errorf("CmdFg emitted %d times for two same-attribute cells, want 1", fgCount)
	}
}

func TestClearLeavesShadowUntouched(t *testing.T) {
	s := New(3, 1)
	s.PutCell(0, 0, model.Cell{Ch: 'a'})
	s.FlushCommands()

	s.Clear()
	cmds := s.FlushCommands()

	found := false
	for _, cmd := range cmds {
		if cmd.Kind == model.CmdPutChar && cmd.Ch == ' ' {
			found = true
		}
	}
	if !found {
		t.Fatal("expected Clear to produce an erasing PutChar after a prior flush painted a non-blank cell")
	}
}
