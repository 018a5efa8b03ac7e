// Package crypto provides the random sources and memory hygiene used when
// generating mnemonics.
//
// Contents
//
//   - OSRandom: the production source over crypto/rand, failing explicitly
//     on short or failed reads
//   - ChaChaSource: a seeded, deterministic ChaCha20 keystream for tests
//   - FixedSource: replays a known entropy vector
//   - Wipe: best-effort zeroing of sensitive byte slices
//
// # Notes
//
// None of the sources retry. A starved or broken OS entropy pool is reported
// to the caller as domain.ErrRandomSourceUnavailable.
package crypto
