package dr

import "encoding/binary"

// headerSize is the wire size of a plaintext Header: a 32-byte public
// key followed by two little-endian uint32 counters.
const headerSize = 32 + 4 + 4

// Header is the per-message ratchet header: the sender's current
// ratchet public key, the message's number within its sending chain,
// and the number of messages sent in the previous sending chain (used
// by the receiver to know how many keys to skip before ratcheting).
//
// Header is encoded explicitly, not via the raw in-memory layout, so
// the wire format is identical regardless of host endianness.
type Header struct {
	PublicKey        Public
	MsgNum           uint32
	PrevChainMsgsCnt uint32
}

// bytes encodes h as headerSize little-endian bytes.
func (h Header) bytes() []byte {
	buf := make([]byte, headerSize)
	copy(buf[:32], h.PublicKey[:])
	binary.LittleEndian.PutUint32(buf[32:36], h.MsgNum)
	binary.LittleEndian.PutUint32(buf[36:40], h.PrevChainMsgsCnt)
	return buf
}

// headerFromBytes decodes a Header from exactly headerSize bytes.
func headerFromBytes(buf []byte) (Header, error) {
	if len(buf) != headerSize {
		return Header{}, ErrHeaderDecode
	}
	var h Header
	copy(h.PublicKey[:], buf[:32])
	h.MsgNum = binary.LittleEndian.Uint32(buf[32:36])
	h.PrevChainMsgsCnt = binary.LittleEndian.Uint32(buf[36:40])
	return h, nil
}

// encrypt encrypts h under key, producing an EncryptedHeader.
func (h Header) encrypt(key HeaderKey) EncryptedHeader {
	var eh EncryptedHeader
	buf := h.bytes()
	tag := cipherEncrypt(key[:], buf, nil)
	copy(eh.bytes[:], buf)
	eh.tag = tag
	return eh
}

// EncryptedHeader is a Header's plaintext image XORed with an
// XChaCha20 keystream derived from a HeaderKey, plus the tag
// authenticating it.
//
// EncryptedHeader is exactly 52 bytes on the wire: 40 bytes of
// (encrypted) header image, then a 12-byte tag.
type EncryptedHeader struct {
	bytes [headerSize]byte
	tag   Tag
}

// Bytes returns the 52-byte wire encoding of eh.
func (eh EncryptedHeader) Bytes() []byte {
	buf := make([]byte, headerSize+tagSize)
	copy(buf[:headerSize], eh.bytes[:])
	copy(buf[headerSize:], eh.tag[:])
	return buf
}

// decrypt authenticates and decrypts eh under key, returning the
// plaintext Header. It does not mutate eh.
func (eh EncryptedHeader) decrypt(key HeaderKey) (Header, error) {
	buf := make([]byte, headerSize)
	copy(buf, eh.bytes[:])
	if err := cipherDecrypt(key[:], buf, nil, eh.tag); err != nil {
		return Header{}, ErrAuth
	}
	return headerFromBytes(buf)
}
