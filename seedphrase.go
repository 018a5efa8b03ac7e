// Package seedphrase generates BIP-39 mnemonic recovery phrases.
//
// GenerateMnemonic is the entry point: pick a strength, get back a fresh
// checksummed phrase drawn from the OS CSPRNG and the English wordlist.
//
//	m, err := seedphrase.GenerateMnemonic(seedphrase.Words24)
//	if err != nil {
//		return err
//	}
//	fmt.Println(m)
//
// The package keeps no state between calls and is safe for concurrent use.
// Failures are reported as wrapped sentinel errors; match them with errors.Is.
package seedphrase

import (
	"seedphrase/internal/crypto"
	"seedphrase/internal/domain"
	"seedphrase/internal/mnemonic"
	"seedphrase/internal/services/generator"
)

type (
	// SecurityLevel selects the phrase strength.
	SecurityLevel = domain.SecurityLevel
	// Mnemonic is a generated phrase; String gives the space-separated form.
	Mnemonic = domain.Mnemonic
	// RandomSource fills buffers with secure random bytes.
	RandomSource = domain.RandomSource
)

const (
	Words12 = domain.Words12
	Words15 = domain.Words15
	Words18 = domain.Words18
	Words21 = domain.Words21
	Words24 = domain.Words24
)

var (
	ErrInvalidEntropyLength    = domain.ErrInvalidEntropyLength
	ErrRandomSourceUnavailable = domain.ErrRandomSourceUnavailable
	ErrWordlist                = domain.ErrWordlist
	ErrInvalidWordCount        = domain.ErrInvalidWordCount
	ErrUnknownWord             = domain.ErrUnknownWord
	ErrChecksumMismatch        = domain.ErrChecksumMismatch
)

// GenerateMnemonic returns a new mnemonic at the given strength using OS
// randomness.
func GenerateMnemonic(level SecurityLevel) (Mnemonic, error) {
	return GenerateMnemonicFrom(crypto.NewOSRandom(), level)
}

// GenerateMnemonicFrom is GenerateMnemonic with a caller-supplied random
// source.
func GenerateMnemonicFrom(src RandomSource, level SecurityLevel) (Mnemonic, error) {
	wl, err := mnemonic.English()
	if err != nil {
		return Mnemonic{}, err
	}
	return generator.New(src, wl, nil).Generate(level)
}

// EncodeEntropy deterministically maps entropy to its mnemonic.
func EncodeEntropy(entropy []byte) (Mnemonic, error) {
	wl, err := mnemonic.English()
	if err != nil {
		return Mnemonic{}, err
	}
	return mnemonic.Encode(entropy, wl)
}

// ValidateMnemonic checks phrase against the English wordlist and its
// checksum, returning the strength it encodes.
func ValidateMnemonic(phrase string) (SecurityLevel, error) {
	wl, err := mnemonic.English()
	if err != nil {
		return 0, err
	}
	return mnemonic.Validate(phrase, wl)
}

// ParseSecurityLevel maps a word count such as "24" to its level.
func ParseSecurityLevel(s string) (SecurityLevel, bool) { return domain.ParseSecurityLevel(s) }
