package dr

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfExpand runs HKDF-SHA256 over salt and ikm with the given info
// string and returns outLen bytes of keying material.
//
// Panics if outLen is not a length HKDF-SHA256 can produce (up to
// 255*32 bytes); every call site in this package uses a small fixed
// outLen, so this is an impossible-precondition panic, not a
// user-input one.
func hkdfExpand(salt, ikm, info []byte, outLen int) []byte {
	out := make([]byte, outLen)
	r := hkdf.New(sha256.New, ikm, salt, info)
	if _, err := io.ReadFull(r, out); err != nil {
		panic("dr: hkdf expand: " + err.Error())
	}
	return out
}
