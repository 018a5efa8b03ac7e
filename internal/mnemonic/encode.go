package mnemonic

import (
	"crypto/sha256"
	"fmt"

	"seedphrase/internal/crypto"
	"seedphrase/internal/domain"
)

// bitsPerWord is log2(WordlistSize).
const bitsPerWord = 11

// Encode maps entropy to its checksummed mnemonic.
//
// The entropy is followed by the first len(entropy)/4 bits of its SHA-256
// digest, and the resulting stream is cut into 11-bit groups, most
// significant bit first; each group indexes wl. Encode neither modifies nor
// keeps entropy.
func Encode(entropy []byte, wl *Wordlist) (domain.Mnemonic, error) {
	level, ok := domain.LevelFromEntropyLen(len(entropy))
	if !ok {
		return domain.Mnemonic{}, fmt.Errorf("%w: %d bytes", domain.ErrInvalidEntropyLength, len(entropy))
	}
	if err := wl.check(); err != nil {
		return domain.Mnemonic{}, err
	}

	// At most 8 checksum bits, so the whole stream fits in entropy plus
	// the first digest byte.
	sum := sha256.Sum256(entropy)
	stream := make([]byte, len(entropy)+1)
	defer crypto.Wipe(stream)
	copy(stream, entropy)
	stream[len(entropy)] = sum[0]

	words := make([]string, level.WordCount())
	for i := range words {
		words[i] = wl.words[readBits(stream, i*bitsPerWord, bitsPerWord)]
	}
	return domain.NewMnemonic(words), nil
}

// readBits returns n bits of buf starting at bit offset off, MSB first.
func readBits(buf []byte, off, n int) int {
	v := 0
	for i := off; i < off+n; i++ {
		bit := (buf[i/8] >> (7 - uint(i%8))) & 1
		v = v<<1 | int(bit)
	}
	return v
}

// writeBits stores the low n bits of v into buf at bit offset off, MSB first.
func writeBits(buf []byte, off, n, v int) {
	for i := 0; i < n; i++ {
		if v>>(n-1-i)&1 == 1 {
			pos := off + i
			buf[pos/8] |= 1 << (7 - uint(pos%8))
		}
	}
}
