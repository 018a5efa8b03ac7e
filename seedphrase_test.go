package seedphrase_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedphrase"
)

func TestGenerateMnemonic(t *testing.T) {
	for _, tt := range []struct {
		level seedphrase.SecurityLevel
		words int
	}{
		{seedphrase.Words12, 12},
		{seedphrase.Words15, 15},
		{seedphrase.Words18, 18},
		{seedphrase.Words21, 21},
		{seedphrase.Words24, 24},
	} {
		m, err := seedphrase.GenerateMnemonic(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.words, m.Len())

		level, err := seedphrase.ValidateMnemonic(m.String())
		require.NoError(t, err)
		assert.Equal(t, tt.level, level)
	}
}

type exhausted struct{}

func (exhausted) Fill([]byte) error {
	return fmt.Errorf("%w: pool empty", seedphrase.ErrRandomSourceUnavailable)
}

func TestGenerateMnemonicFrom_Failure(t *testing.T) {
	m, err := seedphrase.GenerateMnemonicFrom(exhausted{}, seedphrase.Words12)
	require.True(t, errors.Is(err, seedphrase.ErrRandomSourceUnavailable))
	assert.True(t, m.IsZero())
}

func TestEncodeEntropy_AllZero256(t *testing.T) {
	m, err := seedphrase.EncodeEntropy(make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("abandon ", 23)+"art", m.String())

	_, err = seedphrase.EncodeEntropy(make([]byte, 15))
	require.ErrorIs(t, err, seedphrase.ErrInvalidEntropyLength)
}

func ExampleEncodeEntropy() {
	m, err := seedphrase.EncodeEntropy(make([]byte, 16))
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about
}
