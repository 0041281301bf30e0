package model

import "testing"

func TestByteToKeyControlRange(t *testing.T) {
	k, ok := ByteToKey(0x03)
	if !ok || k != CtrlC {
		t.Errorf("ByteToKey(0x03) = %v,%v, want CtrlC,true", k, ok)
	}
}

func TestByteToKeyESCAndSpace(t *testing.T) {
	if k, ok := ByteToKey(0x1B); !ok || k != ESC {
		t.Errorf("ByteToKey(0x1B) = %v,%v, want ESC,true", k, ok)
	}
	if k, ok := ByteToKey(0x20); !ok || k != Space {
		t.Errorf("ByteToKey(0x20) = %v,%v, want Space,true", k, ok)
	}
}

func TestByteToKeyRejectsPrintableBytes(t *testing.T) {
	if _, ok := ByteToKey('a'); ok {
		t.Error("ByteToKey('a') should not be a Key")
	}
}

func TestKeyAliases(t *testing.T) {
	if Backspace != CtrlH {
		t.Errorf("Backspace = %v, want CtrlH", Backspace)
	}
	if Tab != CtrlI {
		t.Errorf("Tab = %v, want CtrlI", Tab)
	}
	if Enter != CtrlM {
		t.Errorf("Enter = %v, want CtrlM", Enter)
	}
}

func TestArrowKeysOutsideControlRange(t *testing.T) {
	for _, k := range []Key{ArrowUp, ArrowDown, ArrowLeft, ArrowRight} {
		if k <= Space {
			t.Errorf("arrow key %v collides with control-byte range", k)
		}
	}
}

func TestEffectHas(t *testing.T) {
	e := Bold | Underline
	if !e.Has(Bold) {
		t.Error("expected Has(Bold)")
	}
	if e.Has(Dim) {
		t.Error("did not expect Has(Dim)")
	}
}
