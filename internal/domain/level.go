package domain

import "strconv"

// SecurityLevel is the strength of a mnemonic, named by its word count.
type SecurityLevel int

const (
	Words12 SecurityLevel = iota
	Words15
	Words18
	Words21
	Words24

	levelCount
)

// DefaultLevel is used when no strength, or an unrecognised one, is requested.
const DefaultLevel = Words12

// entropySizes holds the entropy length in bytes for every SecurityLevel.
var entropySizes = [...]int{
	Words12: 16,
	Words15: 20,
	Words18: 24,
	Words21: 28,
	Words24: 32,
}

// Fails to compile unless entropySizes has exactly one entry per level.
var _ = [1]struct{}{}[len(entropySizes)-int(levelCount)]

// Levels returns every supported level, weakest first.
func Levels() []SecurityLevel {
	out := make([]SecurityLevel, 0, levelCount)
	for l := SecurityLevel(0); l < levelCount; l++ {
		out = append(out, l)
	}
	return out
}

// Valid reports whether l is one of the defined levels.
func (l SecurityLevel) Valid() bool { return l >= 0 && l < levelCount }

// EntropyBytes returns the entropy length required for l.
// It returns 0 for a value outside the enumeration.
func (l SecurityLevel) EntropyBytes() int {
	if !l.Valid() {
		return 0
	}
	return entropySizes[l]
}

// ChecksumBits is the number of SHA-256 bits appended to the entropy.
func (l SecurityLevel) ChecksumBits() int { return l.EntropyBytes() / 4 }

// WordCount is the number of 11-bit words the encoded mnemonic holds.
func (l SecurityLevel) WordCount() int {
	return (l.EntropyBytes()*8 + l.ChecksumBits()) / 11
}

func (l SecurityLevel) String() string {
	if !l.Valid() {
		return "SecurityLevel(" + strconv.Itoa(int(l)) + ")"
	}
	return strconv.Itoa(l.WordCount()) + " words"
}

// ParseSecurityLevel maps a word count such as "24" to its level.
func ParseSecurityLevel(s string) (SecurityLevel, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return LevelFromWordCount(n)
}

// LevelFromWordCount is the reverse of SecurityLevel.WordCount.
func LevelFromWordCount(n int) (SecurityLevel, bool) {
	for _, l := range Levels() {
		if l.WordCount() == n {
			return l, true
		}
	}
	return 0, false
}

// LevelFromEntropyLen is the reverse of SecurityLevel.EntropyBytes.
func LevelFromEntropyLen(n int) (SecurityLevel, bool) {
	for _, l := range Levels() {
		if l.EntropyBytes() == n {
			return l, true
		}
	}
	return 0, false
}
