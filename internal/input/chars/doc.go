// Package chars translates between human-readable key names and the raw
// character sequences a keystroke produces.
//
// Binding configuration refers to keys by name ("Control-u", "Meta-tab",
// "Escape"); ParseCharName resolves such a name into the one- or
// two-character sequence the key emits. EscapeSequence performs the
// inverse direction for display: it renders a raw sequence into the
// escaped form used in help listings and config dumps ("\e", "\C-u").
//
// Everything in this package is a pure function over in-memory values.
// Nothing here reads a file, probes the terminal, or retains state, so
// all functions are safe to call concurrently without synchronization.
//
// The control-bit transforms (Ctrl, Unctrl) operate on the low byte of a
// character and are meaningful only for the ASCII range; non-ASCII input
// is truncated without error and the result carries no defined meaning.
package chars
