package chars

import "strings"

// baseNameMap maps named keys (lowercase) to their character values.
var baseNameMap = map[string]rune{
	"del":     Delete,
	"rubout":  Delete,
	"esc":     Escape,
	"escape":  Escape,
	"lfd":     '\n',
	"newline": '\n',
	"ret":     '\r',
	"return":  '\r',
	"spc":     ' ',
	"space":   ' ',
	"tab":     '\t',
}

// ctrlTokens and metaTokens are the modifier spellings recognized in
// character names.
var (
	ctrlTokens = []string{"c-", "ctrl-", "control-"}
	metaTokens = []string{"m-", "meta-"}
)

// ParseCharName resolves a character name such as "Control-u" or
// "Meta-tab" into the raw key sequence it denotes. Matching is
// case-insensitive. The returned string has one character for a plain
// or control key and two for a meta-prefixed key (Escape followed by
// the base or control-coded character).
//
// Modifier tokens are detected as substrings anywhere in the name, not
// just at the start, so a base name that itself contains "c-" or
// "meta-" is classified as modifier-qualified. This matches the
// behavior binding configurations have historically relied on.
//
// The second return value is false when no character can be resolved:
// an empty name, or a name whose base portion after the last '-' is
// empty (e.g. "x-").
func ParseCharName(name string) (string, bool) {
	lower := strings.ToLower(name)

	isCtrl := containsAny(lower, ctrlTokens)
	isMeta := containsAny(lower, metaTokens)

	base := lower
	if i := strings.LastIndexByte(lower, '-'); i >= 0 {
		base = lower[i+1:]
	}

	ch, ok := resolveBaseName(base)
	if !ok {
		return "", false
	}

	switch {
	case isCtrl && isMeta:
		return Meta(Ctrl(ch)), true
	case isCtrl:
		return string(Ctrl(ch)), true
	case isMeta:
		return Meta(ch), true
	default:
		return string(ch), true
	}
}

// resolveBaseName maps a lowercase base-name token to its character.
// Unrecognized non-empty tokens resolve to their first character.
func resolveBaseName(base string) (rune, bool) {
	if ch, ok := baseNameMap[base]; ok {
		return ch, true
	}
	for _, r := range base {
		return r, true
	}
	return 0, false
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
