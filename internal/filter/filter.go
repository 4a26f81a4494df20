// Package filter prepares romaji input which is not in the plain ASCII form
// the dictionaries expect.
package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	combiningCircumflex = '\u0302'
	combiningMacron     = '\u0304'
)

// Pimsleur normalizes romaji as printed on Pimsleur-style flash cards and in
// textbooks:
//
//   - full-width latin letters are narrowed ("ｋａ" → "ka"),
//   - latin letters are lower-cased,
//   - a vowel with macron or circumflex becomes a doubled vowel ("tōkyō" →
//     "tookyoo", "shôgun" → "shoogun"),
//   - other diacritics on latin letters are dropped.
//
// Kana, punctuation and everything else pass unchanged.
func Pimsleur(s string) string {
	s = norm.NFD.String(width.Fold.String(s))
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) && isLatin(prev) {
			if (r == combiningMacron || r == combiningCircumflex) && isVowel(prev) {
				b.WriteRune(prev)
			}
			continue
		}
		if isLatin(r) {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		prev = r
	}
	return norm.NFC.String(b.String())
}

func isLatin(r rune) bool {
	return r >= 0 && r < 0x250 && unicode.IsLetter(r)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
