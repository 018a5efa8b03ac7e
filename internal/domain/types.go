package domain

import "strings"

// Mnemonic is an ordered, immutable sequence of wordlist entries.
type Mnemonic struct {
	words []string
}

// NewMnemonic copies words into a Mnemonic.
func NewMnemonic(words []string) Mnemonic {
	return Mnemonic{words: append([]string(nil), words...)}
}

// Words returns a copy of the words in order.
func (m Mnemonic) Words() []string { return append([]string(nil), m.words...) }

// Len is the number of words.
func (m Mnemonic) Len() int { return len(m.words) }

// IsZero reports whether m holds no words.
func (m Mnemonic) IsZero() bool { return len(m.words) == 0 }

// String is the display form: words joined by single spaces.
func (m Mnemonic) String() string { return strings.Join(m.words, " ") }

// MarshalText lets encoders render a Mnemonic as its display form.
func (m Mnemonic) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
