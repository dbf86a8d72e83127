package dr

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Distinct one-byte HMAC inputs for the symmetric-ratchet KDF. The
// same HMAC key is reused for both; only the single-byte message
// differs.
const (
	chainKeyMacByte   = 0x02
	messageKeyMacByte = 0x01
)

// stepMsgChain derives the next chain key and a message key from ck.
// It is the pure, shared algorithm behind both SendChain.step and
// RecvChain.step.
func stepMsgChain(ck ChainKey) (ChainKey, MessageKey) {
	h := hmac.New(sha256.New, ck[:])
	h.Write([]byte{chainKeyMacByte})
	var newCK ChainKey
	copy(newCK[:], h.Sum(nil))

	h.Reset()
	h.Write([]byte{messageKeyMacByte})
	var mk MessageKey
	copy(mk[:], h.Sum(nil))

	return newCK, mk
}
