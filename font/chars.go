package font

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// emojiIconFontName is a font whose fullwidth capital letters Ｓ..Ｙ are
// garbled; they are treated as unsupported so a fallback face renders them.
const emojiIconFontName = "emoji-icon-font"

// ignoredChars are never resolved to glyphs regardless of font support.
// This is static policy data, not font metadata:
//   - U+534D, U+5350: religious symbols with a secondary nefarious
//     interpretation
//   - U+E0FF, U+EFFD, U+F0FF, U+F200: Ubuntu-specific private-use glyphs
//     baked into Ubuntu-Light.ttf
var ignoredChars = rangetable.New(
	'卍', '卐',
	'', '', '', '',
)

// invisibleChars is the Unicode formatting range U+200B..U+206F
// (zero-width spaces, joiners, directional marks). Characters in it that a
// font lacks are synthesized as zero-metric glyphs instead of falling back
// to the replacement character.
var invisibleChars = rangetable.New(rangeRunes(0x200B, 0x206F)...)

// rangeRunes returns all runes in [lo, hi].
func rangeRunes(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

// ignoreCharacter reports whether a face must treat the character as
// unsupported.
func ignoreCharacter(faceName string, c rune) bool {
	if faceName == emojiIconFontName && 'Ｓ' <= c && c <= 'Ｙ' {
		return true
	}
	return unicode.Is(ignoredChars, c)
}

// isInvisibleChar reports whether the character is an invisible formatting
// character.
func isInvisibleChar(c rune) bool {
	return unicode.Is(invisibleChars, c)
}
