// Package mnemonic converts between entropy and BIP-39 mnemonic phrases.
//
// Encode is a pure function of its entropy and wordlist: identical inputs
// always produce the identical phrase. Decode and Validate run the mapping in
// reverse and verify the embedded checksum, which catches most transcription
// errors.
//
// # Layout of the bit stream
//
//	| entropy (ENT bits) | SHA-256(entropy)[:ENT/32] |
//
// ENT is 128, 160, 192, 224 or 256; the stream is always a multiple of
// 11 bits long and each 11-bit group is one word.
package mnemonic
