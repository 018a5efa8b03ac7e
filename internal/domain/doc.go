// Package domain defines the mnemonic data model and the contracts between
// its pieces.
//
// It holds plain types (SecurityLevel, Mnemonic), the error taxonomy shared by
// the encoder and generator, and the RandomSource and Generator interfaces.
// Nothing here performs I/O.
package domain
