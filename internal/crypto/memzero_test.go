package crypto_test

import (
	"bytes"
	"testing"

	"seedphrase/internal/crypto"
)

func TestWipe(t *testing.T) {
	b := bytes.Repeat([]byte{0xFF}, 32)
	crypto.Wipe(b)
	if !bytes.Equal(b, make([]byte, 32)) {
		t.Fatalf("buffer not zeroed: %x", b)
	}
	crypto.Wipe(nil)
}
