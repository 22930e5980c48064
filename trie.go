package trie

import (
	"sync"

	"golang.org/x/text/runes"
)

// root is the arena index of the node for the empty prefix.
const root int32 = 0

// Trie is a data structure for storing a fixed set of strings for exact,
// punctuation-insensitive membership tests.
type Trie struct {
	// nodes is the arena. Every node is owned by the arena and addressed by
	// its index; nodes[root] always exists.
	nodes []node
	mu    sync.RWMutex
	skip  runes.Set
	words int
}

// node is one prefix position: a map of runes to child indices, plus a flag set
// when the path from the root spells a complete entry.
type node struct {
	children map[rune]int32
	terminal bool
}

// New creates a new empty trie. By default probe runes in ASCIIPunctuation are
// skipped during matching.
func New() *Trie {
	t := new(Trie)
	t.nodes = []node{{children: make(map[rune]int32)}}
	t.WithSkip(ASCIIPunctuation)
	return t
}

// WithSkip sets the set of runes ignored while scanning a probe in Accepts.
// A nil set disables skipping.
func (t *Trie) WithSkip(set runes.Set) *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	if set == nil {
		set = NoSkip
	}
	t.skip = set
	return t
}

// WithoutSkip sets the Trie to match every probe rune literally.
func (t *Trie) WithoutSkip() *Trie {
	return t.WithSkip(NoSkip)
}

// Insert inserts strings into the Trie. Inserting a string that is already
// present leaves the Trie unchanged.
func (t *Trie) Insert(entries ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, entry := range entries {
		t.insertInternal(entry)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(entry string) {
	current := root
	for _, character := range entry {
		child, ok := t.nodes[current].children[character]
		if !ok {
			child = int32(len(t.nodes))
			t.nodes = append(t.nodes, node{children: make(map[rune]int32)})
			t.nodes[current].children[character] = child
		}
		current = child
	}
	if !t.nodes[current].terminal {
		t.nodes[current].terminal = true
		t.words++
	}
}

// Accepts reports whether probe spells an inserted string once every rune in
// the Trie's skip set has been removed. Matching is case sensitive and stops
// at the first rune with no matching edge.
func (t *Trie) Accepts(probe string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	current := root
	for _, character := range probe {
		if t.skip.Contains(character) {
			continue
		}
		next, ok := t.nodes[current].children[character]
		if !ok {
			return false
		}
		current = next
	}
	return t.nodes[current].terminal
}

// Contains reports whether word was inserted, comparing every rune literally.
func (t *Trie) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	current := root
	for _, character := range word {
		next, ok := t.nodes[current].children[character]
		if !ok {
			return false
		}
		current = next
	}
	return t.nodes[current].terminal
}

// Len returns the number of distinct strings inserted.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// Size returns the number of nodes in the Trie, including the root.
func (t *Trie) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}
