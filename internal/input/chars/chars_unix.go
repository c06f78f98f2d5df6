//go:build !windows

package chars

// Delete is the character value generated by the Backspace key.
// On Unix systems this is the same byte as Rubout.
const Delete rune = Rubout
