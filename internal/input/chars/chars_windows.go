//go:build windows

package chars

// Delete is the character value generated by the Backspace key.
// On Windows consoles the key emits Ctrl-H.
const Delete rune = 0x08
