package crypto

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20"

	"seedphrase/internal/domain"
)

// ChaChaSource is a deterministic RandomSource: the ChaCha20 keystream for a
// 32-byte seed. Equal seeds yield equal byte sequences, which makes it useful
// for reproducible tests and nothing else.
type ChaChaSource struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewChaChaSource keys the keystream with seed and an all-zero nonce.
func NewChaChaSource(seed []byte) (*ChaChaSource, error) {
	if len(seed) != chacha20.KeySize {
		return nil, fmt.Errorf("chacha source: want %d-byte seed, got %d", chacha20.KeySize, len(seed))
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(seed, nonce)
	if err != nil {
		return nil, fmt.Errorf("chacha source: %w", err)
	}
	return &ChaChaSource{stream: c}, nil
}

// Fill overwrites b with the next len(b) keystream bytes.
func (s *ChaChaSource) Fill(b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(b)
	s.stream.XORKeyStream(b, b)
	return nil
}

var _ domain.RandomSource = (*ChaChaSource)(nil)
