package dr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMacVector(t *testing.T) {
	got := mac([]byte("key"), []byte("buf"), [][]byte{[]byte("assoc1"), []byte("assoc2")})
	want := [32]byte{
		0xBE, 0x43, 0x76, 0x03, 0x20, 0xCC, 0x69, 0x9A,
		0x43, 0x36, 0xE7, 0xE2, 0x03, 0xF5, 0xD0, 0x20,
		0x3E, 0x0F, 0x47, 0x4C, 0x8E, 0xF2, 0xCB, 0xB7,
		0x73, 0x64, 0xB2, 0xE5, 0xE0, 0x77, 0xFC, 0x6B,
	}
	require.Equal(t, want, got)
}

func TestCipherRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	buf := []byte("the quick brown fox jumps over the lazy dog")
	orig := append([]byte(nil), buf...)
	assoc := [][]byte{[]byte("ad1"), []byte("ad2")}

	tag := cipherEncrypt(key, buf, assoc)
	require.NotEqual(t, orig, buf)

	err := cipherDecrypt(key, buf, assoc, tag)
	require.NoError(t, err)
	require.Equal(t, orig, buf)
}

func TestCipherTamperDetected(t *testing.T) {
	key := make([]byte, 32)
	buf := []byte("message")
	tag := cipherEncrypt(key, buf, nil)

	tag[0] ^= 0xFF
	err := cipherDecrypt(key, buf, nil, tag)
	require.ErrorIs(t, err, ErrAuth)
}

func TestCipherLeavesBufUntouchedOnAuthFailure(t *testing.T) {
	key := make([]byte, 32)
	buf := []byte("message")
	tag := cipherEncrypt(key, buf, nil)
	before := append([]byte(nil), buf...)

	tag[0] ^= 0xFF
	err := cipherDecrypt(key, buf, nil, tag)
	require.Error(t, err)
	require.Equal(t, before, buf)
}
