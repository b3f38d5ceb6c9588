// Package textutil provides pure text transforms for accent-insensitive
// matching and display formatting.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// accentTable maps accented and decorated Latin letters to their unaccented
// base letter. It is a closed table, not Unicode decomposition: lookups cover
// the Latin-1 Supplement, Latin Extended-A and Vietnamese ranges that occur
// in European and romanized place names, plus a few ligature-like letters.
// Keys are lowercase because NormalizeText folds case before substituting;
// the long s (U+017F) is listed explicitly since case folding leaves it alone.
var accentTable = map[rune]rune{
	// a
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'ā': 'a', 'ă': 'a', 'ą': 'a', 'ǎ': 'a',
	'ạ': 'a', 'ả': 'a', 'ấ': 'a', 'ầ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'ắ': 'a', 'ằ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'æ': 'a',
	// c
	'ç': 'c', 'ć': 'c', 'ĉ': 'c', 'ċ': 'c', 'č': 'c',
	// d
	'ď': 'd', 'đ': 'd', 'ð': 'd',
	// e
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ē': 'e', 'ĕ': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ẹ': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ế': 'e', 'ề': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	// g
	'ĝ': 'g', 'ğ': 'g', 'ġ': 'g', 'ģ': 'g',
	// h
	'ĥ': 'h', 'ħ': 'h',
	// i
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ĩ': 'i', 'ī': 'i', 'ĭ': 'i', 'į': 'i', 'ı': 'i', 'ǐ': 'i',
	'ỉ': 'i', 'ị': 'i',
	'ĳ': 'i',
	// j
	'ĵ': 'j',
	// k
	'ķ': 'k',
	// l
	'ĺ': 'l', 'ļ': 'l', 'ľ': 'l', 'ŀ': 'l', 'ł': 'l',
	// n
	'ñ': 'n', 'ń': 'n', 'ņ': 'n', 'ň': 'n', 'ŉ': 'n',
	// o
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'ō': 'o', 'ŏ': 'o', 'ő': 'o', 'ǒ': 'o', 'ơ': 'o',
	'ọ': 'o', 'ỏ': 'o', 'ố': 'o', 'ồ': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ớ': 'o', 'ờ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'œ': 'o',
	// r
	'ŕ': 'r', 'ŗ': 'r', 'ř': 'r',
	// s
	'ś': 's', 'ŝ': 's', 'ş': 's', 'š': 's', 'ș': 's', 'ſ': 's',
	// t
	'ţ': 't', 'ť': 't', 'ŧ': 't', 'ț': 't',
	// u
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ũ': 'u', 'ū': 'u', 'ŭ': 'u', 'ů': 'u', 'ű': 'u', 'ų': 'u', 'ǔ': 'u', 'ư': 'u',
	'ụ': 'u', 'ủ': 'u', 'ứ': 'u', 'ừ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	// w
	'ŵ': 'w',
	// y
	'ý': 'y', 'ÿ': 'y', 'ŷ': 'y',
	'ỳ': 'y', 'ỵ': 'y', 'ỷ': 'y', 'ỹ': 'y',
	// z
	'ź': 'z', 'ż': 'z', 'ž': 'z',
}

// NormalizeText lowercases text and strips diacritics from Latin letters so
// that "Sao Paulo" compares equal to "São Paulo". Substitution is limited to
// the characters in accentTable; anything else passes through unchanged,
// including digits, punctuation and non-Latin scripts. The function is pure,
// deterministic and idempotent.
func NormalizeText(text string) string {
	if text == "" {
		return text
	}
	lowered := strings.ToLower(text)
	return strings.Map(func(r rune) rune {
		if base, ok := accentTable[r]; ok {
			return base
		}
		return r
	}, lowered)
}

// TruncateText truncates text to a maximum number of runes (Unicode-safe).
// If the text exceeds maxLength runes, it is truncated with "..." appended.
func TruncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return string([]rune(text)[:maxLength])
	}
	return string([]rune(text)[:maxLength-3]) + "..."
}
