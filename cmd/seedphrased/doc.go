// Package main runs seedphrased, a small local HTTP service that hands out
// fresh BIP-39 mnemonics.
//
// HTTP API
//
//	GET /mnemonic?words=N
//	    Generate a mnemonic of N words (12, 15, 18, 21 or 24; default 12).
//	    Returns {"words": N, "mnemonic": "..."}.
//
//	POST /verify {"mnemonic": "..."}
//	    Check a phrase's checksum. Returns {"valid": bool, "words": N} or
//	    {"valid": false, "error": "..."}.
//
//	GET /levels
//	    The supported word count / entropy / checksum table.
//
// Behaviour
//
//   - Nothing is stored; every request draws fresh entropy from the OS.
//   - Responses are JSON with Cache-Control: no-store.
//   - A failed entropy read answers 503; it is not retried.
//   - The access log never records query strings or bodies.
//   - The default listen address is 127.0.0.1:8080 (SEEDPHRASE_ADDR).
//
// Phrases travel in plaintext, so keep the listener on loopback or put TLS
// in front of it.
package main
