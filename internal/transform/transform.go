package transform

import "strings"

// baseMap replaces a fixed set of Latin letters with visually identical
// code points from the Cyrillic and Greek scripts. One code point in, one
// code point out.
var baseMap = map[rune]rune{
	'A': 'А', 'B': 'В', 'C': 'С', 'E': 'Е', 'H': 'Н', 'I': 'І', 'J': 'Ј',
	'K': 'К', 'M': 'М', 'N': 'Ν', 'O': 'О', 'P': 'Р', 'S': 'Ѕ', 'T': 'Т',
	'X': 'Х', 'Y': 'Υ',
	'a': 'а', 'c': 'с', 'e': 'е', 'i': 'і', 'j': 'ј', 'o': 'о', 'p': 'р',
	's': 'ѕ', 'x': 'х', 'y': 'у',
	'd': 'ԁ', 'h': 'һ', 'n': 'п', 't': 'т', 'u': 'υ', 'v': 'ѵ', 'w': 'ԝ',
	'r': 'г', 'b': 'Ь', 'z': 'ᴢ',
}

// greekOX overrides the capital O and X substitutes with their Greek
// counterparts (omicron and chi) when the alternate mode is requested.
var greekOX = map[rune]rune{
	'O': 'Ο',
	'X': 'Χ',
}

// Convert substitutes each mapped rune of text and passes every other rune
// through unchanged. The output has exactly as many runes as the input, in
// the same order. Convert is pure: the same text and mode always produce the
// same result.
func Convert(text string, useGreekOX bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if useGreekOX {
			if sub, ok := greekOX[r]; ok {
				b.WriteRune(sub)
				continue
			}
		}
		if sub, ok := baseMap[r]; ok {
			b.WriteRune(sub)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
