package festival

import (
	"unicode/utf8"

	"festival/internal/model"
)

// ArrowSequences is the cached terminfo escape-byte-string for each
// arrow key, in the fixed UP/DOWN/LEFT/RIGHT check order.
type ArrowSequences = [4][]byte

var arrowKeys = [4]Key{ArrowUp, ArrowDown, ArrowLeft, ArrowRight}

// parseEvent is the pure decoder: given a byte slice and the cached
// arrow-key escape sequences, it returns the number of bytes consumed
// and the decoded event, or ok=false if the buffer does not yet hold
// enough bytes to decide.
func parseEvent(buf []byte, arrows ArrowSequences) (consumed int, ev Event, ok bool) {
	if len(buf) == 0 {
		return 0, Event{}, false
	}

	if buf[0] == 0x1B {
		if n, key, matched := matchArrow(buf, arrows); matched {
			return n, keyEvent(key), true
		}
		if couldExtendArrow(buf, arrows) {
			// buf is a proper prefix of some arrow capability; wait for
			// the rest rather than deciding ESC prematurely.
			return 0, Event{}, false
		}
	}

	if k, isKey := model.ByteToKey(buf[0]); isKey {
		return 1, keyEvent(Key(k)), true
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		// Either the leading byte doesn't start a valid UTF-8 sequence,
		// or it does but the rest hasn't arrived yet. Either way the
		// caller just waits for more bytes; a persistently invalid
		// leading byte stalls decoding of that stream position, which
		// matches the spec's documented caller-discretion fallback.
		return 0, Event{}, false
	}
	return size, charEvent(r), true
}

// matchArrow checks buf against each arrow-key capability in the
// fixed order UP, DOWN, LEFT, RIGHT, returning the first prefix match.
func matchArrow(buf []byte, arrows ArrowSequences) (int, Key, bool) {
	for i, seq := range arrows {
		if len(seq) == 0 {
			continue
		}
		if hasPrefix(buf, seq) {
			return len(seq), arrowKeys[i], true
		}
	}
	return 0, 0, false
}

// couldExtendArrow reports whether buf is a proper prefix of some
// arrow-key capability string, i.e. more bytes could still turn it
// into a match.
func couldExtendArrow(buf []byte, arrows ArrowSequences) bool {
	for _, seq := range arrows {
		if len(seq) == 0 || len(seq) <= len(buf) {
			continue
		}
		if hasPrefix(seq, buf) {
			return true
		}
	}
	return false
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if buf[i] != b {
			return false
		}
	}
	return true
}

func keyEvent(k Key) Event {
	return Event{Kind: model.EventKey, Key: k}
}

func charEvent(r rune) Event {
	return Event{Kind: model.EventChar, Ch: r}
}

func resizeEvent(width, height int) Event {
	return Event{Kind: model.EventResize, Width: width, Height: height}
}
