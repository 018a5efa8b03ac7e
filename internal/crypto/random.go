package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"seedphrase/internal/domain"
)

// OSRandom is the production RandomSource backed by the operating system
// CSPRNG.
type OSRandom struct {
	// Reader overrides crypto/rand.Reader; tests only.
	Reader io.Reader
}

// NewOSRandom returns a source reading from crypto/rand.
func NewOSRandom() *OSRandom { return &OSRandom{} }

// Fill reads exactly len(b) bytes. A failed or short read is reported as
// domain.ErrRandomSourceUnavailable and leaves b zeroed; it is never retried.
func (r *OSRandom) Fill(b []byte) error {
	src := r.Reader
	if src == nil {
		src = rand.Reader
	}
	if _, err := io.ReadFull(src, b); err != nil {
		Wipe(b)
		return fmt.Errorf("%w: read %d bytes: %w", domain.ErrRandomSourceUnavailable, len(b), err)
	}
	return nil
}

// FixedSource replays one entropy vector. It exists for reproducing known
// mnemonics and must not be used to generate real secrets.
type FixedSource struct {
	Entropy []byte
}

func (f FixedSource) Fill(b []byte) error {
	if len(b) != len(f.Entropy) {
		return fmt.Errorf("%w: fixed source holds %d bytes, %d requested",
			domain.ErrRandomSourceUnavailable, len(f.Entropy), len(b))
	}
	copy(b, f.Entropy)
	return nil
}

var (
	_ domain.RandomSource = (*OSRandom)(nil)
	_ domain.RandomSource = FixedSource{}
)
