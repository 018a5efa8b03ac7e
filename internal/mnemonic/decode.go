package mnemonic

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"strings"

	"seedphrase/internal/crypto"
	"seedphrase/internal/domain"
)

// Decode recovers the entropy behind phrase and checks its checksum.
//
// Words may be separated by any whitespace and are matched case-insensitively.
// Errors name word positions, never the words themselves.
func Decode(phrase string, wl *Wordlist) ([]byte, domain.SecurityLevel, error) {
	if err := wl.check(); err != nil {
		return nil, 0, err
	}
	fields := strings.Fields(strings.ToLower(phrase))
	level, ok := domain.LevelFromWordCount(len(fields))
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d words", domain.ErrInvalidWordCount, len(fields))
	}

	n := level.EntropyBytes()
	stream := make([]byte, n+1)
	defer crypto.Wipe(stream)
	for i, w := range fields {
		idx, ok := wl.Index(w)
		if !ok {
			return nil, 0, fmt.Errorf("%w: word %d", domain.ErrUnknownWord, i+1)
		}
		writeBits(stream, i*bitsPerWord, bitsPerWord, idx)
	}

	entropy := make([]byte, n)
	copy(entropy, stream[:n])
	shift := 8 - uint(level.ChecksumBits())
	sum := sha256.Sum256(entropy)
	if subtle.ConstantTimeByteEq(stream[n]>>shift, sum[0]>>shift) != 1 {
		crypto.Wipe(entropy)
		return nil, 0, domain.ErrChecksumMismatch
	}
	return entropy, level, nil
}

// Validate reports whether phrase is a well-formed mnemonic over wl and
// returns its strength.
func Validate(phrase string, wl *Wordlist) (domain.SecurityLevel, error) {
	entropy, level, err := Decode(phrase, wl)
	if err != nil {
		return 0, err
	}
	crypto.Wipe(entropy)
	return level, nil
}
