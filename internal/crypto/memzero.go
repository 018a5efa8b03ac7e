package crypto

import (
	"crypto/subtle"
	"runtime"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.XORBytes(b, b, b)
	// Ensure b is considered live until after the write.
	runtime.KeepAlive(&b)
}
