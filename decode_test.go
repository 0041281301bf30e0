package festival

import (
	"testing"
)

func testArrows() ArrowSequences {
	return ArrowSequences{
		[]byte("\x1b[A"),
		[]byte("\x1b[B"),
		[]byte("\x1b[D"),
		[]byte("\x1b[C"),
	}
}

func TestParseEventArrowUp(t *testing.T) {
	n, ev, ok := parseEvent([]byte("\x1b[A"), testArrows())
	if !ok {
		t.Fatal("expected ok")
	}
	if n != 3 {
		t.Errorf("consumed = %d, want 3", n)
	}
	if ev.Kind != EventKey || ev.Key != ArrowUp {
		t.Errorf("ev = %+v, want ArrowUp key event", ev)
	}
}

func TestParseEventControlChar(t *testing.T) {
	n, ev, ok := parseEvent([]byte{0x03}, testArrows())
	if !ok || n != 1 {
		t.Fatalf("consumed=%d ok=%v, want 1,true", n, ok)
	}
	if ev.Kind != EventKey || ev.Key != CtrlC {
		t.Errorf("ev = %+v, want CtrlC", ev)
	}
}

func TestParseEventUTF8Char(t *testing.T) {
	s := "あ" // E3 81 82
	n, ev, ok := parseEvent([]byte(s), testArrows())
	if !ok {
		t.Fatal("expected ok")
	}
	if n != 3 {
		t.Errorf("consumed = %d, want 3", n)
	}
	if ev.Kind != EventChar || ev.Ch != 'あ' {
		t.Errorf("ev = %+v, want Char(あ)", ev)
	}
}

func TestParseEventIncompleteUTF8(t *testing.T) {
	_, _, ok := parseEvent([]byte{0xE3, 0x81}, testArrows())
	if ok {
		t.Fatal("expected ok=false on incomplete UTF-8 sequence")
	}
}

func TestParseEventEmptyBuffer(t *testing.T) {
	_, _, ok := parseEvent(nil, testArrows())
	if ok {
		t.Fatal("expected ok=false on empty buffer")
	}
}

func TestParseEventEscWaitsOnPartialArrowPrefix(t *testing.T) {
	_, _, ok := parseEvent([]byte{0x1b}, testArrows())
	if ok {
		t.Fatal("expected ok=false: lone ESC could still extend into an arrow sequence")
	}
	_, _, ok = parseEvent([]byte("\x1b["), testArrows())
	if ok {
		t.Fatal("expected ok=false: ESC [ could still extend into an arrow sequence")
	}
}

func TestParseEventEscAloneWhenNoCapabilitiesDefined(t *testing.T) {
	noArrows := ArrowSequences{}
	n, ev, ok := parseEvent([]byte{0x1b}, noArrows)
	if !ok || n != 1 {
		t.Fatalf("consumed=%d ok=%v, want 1,true", n, ok)
	}
	if ev.Key != ESC {
		t.Errorf("ev.Key = %v, want ESC", ev.Key)
	}
}

func TestParseEventPrefixConsumedLenNeverExceedsBuffer(t *testing.T) {
	buf := []byte("\x1b[A" + "rest")
	n, _, ok := parseEvent(buf, testArrows())
	if !ok {
		t.Fatal("expected ok")
	}
	if n > len(buf) {
		t.Fatalf("consumed %d exceeds buffer length %d", n, len(buf))
	}
}
