package binding

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/linebind/internal/input/chars"
)

// EncodeEvent converts a tcell key event into the raw sequence the
// keystroke emits under the chars conventions: Alt becomes the
// Escape-prefix meta encoding and Ctrl-letter combinations fold into
// their control characters. The result is the string to pass to
// Registry.Lookup.
//
// Keys with no single-byte encoding (function keys, arrows, navigation
// keys) return false; they belong to the terminal's multi-byte escape
// sequences, which this layer does not model.
func EncodeEvent(ev *tcell.EventKey) (string, bool) {
	var r rune

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r = ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			r = chars.Ctrl(r)
		}
	case k == tcell.KeyBackspace2:
		r = chars.Rubout
	case rune(k) <= 0x1f:
		// tcell's control keys carry their byte value, which covers
		// Enter, Tab, Escape, and every Ctrl-letter combination.
		r = rune(k)
	default:
		return "", false
	}

	if ev.Modifiers()&tcell.ModAlt != 0 {
		return chars.Meta(r), true
	}
	return string(r), true
}

// LookupEvent encodes a tcell key event and looks up its binding.
func (r *Registry) LookupEvent(ev *tcell.EventKey) (*Resolved, bool) {
	seq, ok := EncodeEvent(ev)
	if !ok {
		return nil, false
	}
	return r.Lookup(seq)
}
