// Package generator ties the sizing policy, a random source and the encoder
// together: level in, fresh mnemonic out.
package generator
