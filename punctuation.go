package trie

import (
	"unicode"

	"golang.org/x/text/runes"
)

var (
	// ASCIIPunctuation holds the printable ASCII runes that are neither
	// letters, digits nor space: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
	ASCIIPunctuation = runes.Predicate(IsPunctuation)

	// UnicodePunctuation holds every rune in the Unicode P categories. Unlike
	// ASCIIPunctuation it does not include symbols such as '$' or '+'.
	UnicodePunctuation = runes.In(unicode.P)

	// NoSkip holds no runes.
	NoSkip = runes.Predicate(func(rune) bool { return false })
)

// IsPunctuation reports whether r is an ASCII punctuation rune.
func IsPunctuation(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
	case r >= ':' && r <= '@':
	case r >= '[' && r <= '`':
	case r >= '{' && r <= '~':
	default:
		return false
	}
	return true
}
