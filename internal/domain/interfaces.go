package domain

// RandomSource fills buffers with cryptographically secure random bytes.
//
// Implementations must fail explicitly rather than return partially filled
// or low-entropy data.
type RandomSource interface {
	Fill(b []byte) error
}

// Generator produces fresh mnemonics at a requested strength.
type Generator interface {
	Generate(level SecurityLevel) (Mnemonic, error)
}

// Verifier checks a written-down phrase against its embedded checksum.
type Verifier interface {
	Verify(phrase string) (SecurityLevel, error)
}
