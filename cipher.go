package dr

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/chacha20"
)

// Tag is a truncated HMAC-SHA256 authenticator.
//
// The truncation point is pinned to 12 bytes out of a valid 8-32 byte
// range; this implementation hard-codes 12 and does not expose it as
// a parameter.
type Tag [tagSize]byte

const (
	tagSize = 12

	// cipherKDFInfo is the HKDF info string for deriving the
	// encryption key, authentication key, and nonce used by encrypt
	// and decrypt below.
	cipherKDFInfo = "cipher-kdf-info"
	// cipherKDFOutLen splits into a 32-byte encryption key, a 32-byte
	// authentication key, and a 24-byte XChaCha20 nonce.
	cipherKDFOutLen = 32 + 32 + chacha20.NonceSizeX
)

// cipherMaterial is the HKDF output for one encrypt/decrypt call,
// split into its three logical keys.
type cipherMaterial struct {
	encKey, authKey, nonce []byte
}

// cipherKDFSalt is 88 zero bytes, matching the 88-byte KDF output
// length. This is distinct from HKDF's default all-zero salt (which
// is one hash-length, 32 bytes for SHA-256): the salt length here is
// pinned to the output length instead.
var cipherKDFSalt = make([]byte, cipherKDFOutLen)

func deriveCipherMaterial(key []byte) cipherMaterial {
	out := hkdfExpand(cipherKDFSalt, key, []byte(cipherKDFInfo), cipherKDFOutLen)
	return cipherMaterial{
		encKey:  out[0:32],
		authKey: out[32:64],
		nonce:   out[64:88],
	}
}

// mac computes HMAC-SHA256(authKey, buf || assoc[0] || ... || assoc[n-1]).
func mac(authKey, buf []byte, assoc [][]byte) [32]byte {
	h := hmac.New(sha256.New, authKey)
	h.Write(buf)
	for _, a := range assoc {
		h.Write(a)
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// cipherEncrypt encrypts buf in place under the 32-byte key and
// returns a tag authenticating the resulting ciphertext together with
// assoc.
//
// This is an encrypt-then-MAC construction: an XChaCha20 keystream
// XORed over buf, then an HMAC-SHA256 over (ciphertext || assoc...)
// truncated to a Tag.
func cipherEncrypt(key []byte, buf []byte, assoc [][]byte) Tag {
	mat := deriveCipherMaterial(key)
	xorKeystream(mat.encKey, mat.nonce, buf)
	sum := mac(mat.authKey, buf, assoc)
	var tag Tag
	copy(tag[:], sum[:tagSize])
	return tag
}

// cipherDecrypt authenticates buf (the ciphertext) against tag and
// assoc, then decrypts it in place. On authentication failure buf is
// left untouched.
func cipherDecrypt(key []byte, buf []byte, assoc [][]byte, tag Tag) error {
	mat := deriveCipherMaterial(key)
	sum := mac(mat.authKey, buf, assoc)
	var got Tag
	copy(got[:], sum[:tagSize])
	if !hmac.Equal(got[:], tag[:]) {
		return ErrAuth
	}
	xorKeystream(mat.encKey, mat.nonce, buf)
	return nil
}

// xorKeystream XORs an XChaCha20 keystream (key, nonce) over buf in
// place.
func xorKeystream(key, nonce, buf []byte) {
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// key/nonce are always 32/24 bytes, fresh out of HKDF.
		panic("dr: chacha20 cipher: " + err.Error())
	}
	c.XORKeyStream(buf, buf)
}
