/*
Package trie provides a prefix tree for exact membership tests of place names.
Probes are matched character for character, except that punctuation runes in
the probe are skipped, so "Malay,sia" and "Malaysia!" both match "Malaysia".
*/
package trie
