package chars

import "strings"

// Character values with fixed, platform-independent encodings.
const (
	// Escape is the character value generated by the Escape key.
	Escape rune = 0x1b

	// Rubout is the character value generated by the Backspace key on
	// most Unix terminals.
	Rubout rune = 0x7f
)

const (
	ctrlBit  = 0x40
	ctrlMask = 0x1f
)

// IsCtrl returns true if r is a control character: non-null with a
// value at or below 0x1F.
func IsCtrl(r rune) bool {
	return r != 0 && r <= ctrlMask
}

// Ctrl returns the control-character form of r, e.g. Ctrl('A') is 0x01
// and Ctrl('I') is tab. The transform masks the low byte; it is only
// meaningful for ASCII input. Non-ASCII input is truncated and the
// result carries no defined meaning.
func Ctrl(r rune) rune {
	return rune(byte(r) & ctrlMask)
}

// Unctrl returns the printable uppercase form of a control character,
// the inverse of Ctrl over the ASCII range: Unctrl('\t') is 'I'.
func Unctrl(r rune) rune {
	return rune(byte(r) | ctrlBit)
}

// UnctrlLower returns the lowercase printable form of a control
// character, as used in the "\C-x" display notation.
func UnctrlLower(r rune) rune {
	u := Unctrl(r)
	if u >= 'A' && u <= 'Z' {
		u += 'a' - 'A'
	}
	return u
}

// Meta returns the two-character meta sequence for r: Escape followed
// by r itself.
func Meta(r rune) string {
	var sb strings.Builder
	sb.Grow(len(string(r)) + 1)
	sb.WriteRune(Escape)
	sb.WriteRune(r)
	return sb.String()
}

// EscapeSequence renders a raw character sequence in escaped form for
// user-facing display. Escape becomes `\e`, Rubout becomes `\C-?`,
// other control characters become `\C-` followed by their lowercase
// letter, and backslash and quote characters are backslash-escaped.
// Everything else passes through unchanged, so a string free of special
// characters is returned as-is.
func EscapeSequence(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		switch {
		case r == Escape:
			sb.WriteString(`\e`)
		case r == Rubout:
			sb.WriteString(`\C-?`)
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '\'':
			sb.WriteString(`\'`)
		case r == '"':
			sb.WriteString(`\"`)
		case IsCtrl(r):
			sb.WriteString(`\C-`)
			sb.WriteRune(UnctrlLower(r))
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
