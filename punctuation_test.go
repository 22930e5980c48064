package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPunctuation(t *testing.T) {
	for _, r := range "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" {
		assert.True(t, IsPunctuation(r), string(r))
		assert.True(t, ASCIIPunctuation.Contains(r), string(r))
	}
	for _, r := range "azAZ09 \t\n\x00\x7féü«»" {
		assert.False(t, IsPunctuation(r), string(r))
	}
}

func TestUnicodePunctuation(t *testing.T) {
	assert.True(t, UnicodePunctuation.Contains('«'))
	assert.True(t, UnicodePunctuation.Contains(','))
	assert.False(t, UnicodePunctuation.Contains('$'))
	assert.False(t, UnicodePunctuation.Contains('a'))
	assert.False(t, NoSkip.Contains('!'))
}
