package mnemonic

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"seedphrase/internal/domain"
)

// WordlistSize is the number of entries every BIP-39 wordlist holds; each
// word encodes one 11-bit group.
const WordlistSize = 2048

//go:embed english.txt
var englishWords string

// Wordlist is a validated, read-only BIP-39 dictionary. A word's position is
// its index. It is safe for concurrent use.
type Wordlist struct {
	words []string
	index map[string]int
}

// NewWordlist validates words and builds the reverse index. It fails with
// domain.ErrWordlist unless there are exactly 2048 unique, non-empty words.
func NewWordlist(words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("%w: want %d words, got %d", domain.ErrWordlist, WordlistSize, len(words))
	}
	wl := &Wordlist{
		words: append([]string(nil), words...),
		index: make(map[string]int, WordlistSize),
	}
	for i, w := range wl.words {
		if w == "" || strings.ContainsAny(w, " \t\r\n") {
			return nil, fmt.Errorf("%w: entry %d is empty or contains whitespace", domain.ErrWordlist, i)
		}
		if prev, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("%w: %q appears at %d and %d", domain.ErrWordlist, w, prev, i)
		}
		wl.index[w] = i
	}
	return wl, nil
}

var english = sync.OnceValues(func() (*Wordlist, error) {
	return NewWordlist(strings.Fields(englishWords))
})

// English returns the canonical BIP-39 English wordlist. It is parsed once.
func English() (*Wordlist, error) { return english() }

// Len is always WordlistSize for a constructed list.
func (w *Wordlist) Len() int { return len(w.words) }

// Word returns the word at index i, or false when i is outside
// [0, WordlistSize).
func (w *Wordlist) Word(i int) (string, bool) {
	if i < 0 || i >= len(w.words) {
		return "", false
	}
	return w.words[i], true
}

// Index returns the position of word, if present.
func (w *Wordlist) Index(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

func (w *Wordlist) check() error {
	if w == nil || len(w.words) != WordlistSize {
		return fmt.Errorf("%w: wordlist not initialised", domain.ErrWordlist)
	}
	return nil
}
