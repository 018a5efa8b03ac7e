package mnemonic_test

import (
	"bytes"
	"strings"
	"testing"

	bip39 "github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedphrase/internal/crypto"
	"seedphrase/internal/domain"
	"seedphrase/internal/mnemonic"
)

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()
	wl := english(t)
	src, err := crypto.NewChaChaSource(bytes.Repeat([]byte{0x07}, 32))
	require.NoError(t, err)

	for _, level := range domain.Levels() {
		for i := 0; i < 20; i++ {
			entropy := make([]byte, level.EntropyBytes())
			require.NoError(t, src.Fill(entropy))

			m, err := mnemonic.Encode(entropy, wl)
			require.NoError(t, err)

			got, gotLevel, err := mnemonic.Decode(m.String(), wl)
			require.NoError(t, err)
			assert.Equal(t, entropy, got)
			assert.Equal(t, level, gotLevel)
			assert.True(t, bip39.IsMnemonicValid(m.String()))
		}
	}
}

func TestDecode_ToleratesWhitespaceAndCase(t *testing.T) {
	t.Parallel()
	wl := english(t)
	phrase := "  Legal winner\tthank YEAR wave sausage\nworth useful legal winner thank yellow "

	entropy, level, err := mnemonic.Decode(phrase, wl)
	require.NoError(t, err)
	assert.Equal(t, domain.Words12, level)
	assert.Equal(t, bytes.Repeat([]byte{0x7f}, 16), entropy)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()
	wl := english(t)

	tests := []struct {
		name   string
		phrase string
		want   error
	}{
		{
			name:   "bad checksum",
			phrase: strings.Repeat("abandon ", 11) + "abandon",
			want:   domain.ErrChecksumMismatch,
		},
		{
			name:   "swapped words",
			phrase: "winner legal thank year wave sausage worth useful legal winner thank yellow",
			want:   domain.ErrChecksumMismatch,
		},
		{
			name:   "unknown word",
			phrase: strings.Repeat("abandon ", 11) + "bitcoin",
			want:   domain.ErrUnknownWord,
		},
		{
			name:   "too few words",
			phrase: strings.Repeat("abandon ", 11),
			want:   domain.ErrInvalidWordCount,
		},
		{
			name:   "empty",
			phrase: "",
			want:   domain.ErrInvalidWordCount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entropy, _, err := mnemonic.Decode(tt.phrase, wl)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, entropy)
		})
	}
}

func TestDecode_ErrorDoesNotEchoWords(t *testing.T) {
	t.Parallel()
	wl := english(t)

	_, _, err := mnemonic.Decode(strings.Repeat("abandon ", 11)+"satoshi", wl)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "satoshi")
	assert.Contains(t, err.Error(), "word 12")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	wl := english(t)

	level, err := mnemonic.Validate(strings.Repeat("zoo ", 23)+"vote", wl)
	require.NoError(t, err)
	assert.Equal(t, domain.Words24, level)

	_, err = mnemonic.Validate(strings.Repeat("zoo ", 24), wl)
	require.ErrorIs(t, err, domain.ErrChecksumMismatch)
}
