package domain

import "errors"

var (
	// ErrInvalidEntropyLength means the entropy buffer matches no SecurityLevel.
	ErrInvalidEntropyLength = errors.New("invalid entropy length")
	// ErrRandomSourceUnavailable means the random source could not fill a buffer.
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
	// ErrWordlist means the wordlist is not 2048 unique, non-empty words.
	ErrWordlist = errors.New("malformed wordlist")

	ErrInvalidWordCount = errors.New("invalid mnemonic word count")
	ErrUnknownWord      = errors.New("word not in wordlist")
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")
)
