package dr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderEncryptDecryptRoundTrip(t *testing.T) {
	var hdrKey HeaderKey
	for i := range hdrKey {
		hdrKey[i] = byte(i + 1)
	}

	hdr := Header{MsgNum: 7, PrevChainMsgsCnt: 3}
	for i := range hdr.PublicKey {
		hdr.PublicKey[i] = byte(i)
	}

	eh := hdr.encrypt(hdrKey)
	require.Len(t, eh.Bytes(), headerSize+tagSize)

	got, err := eh.decrypt(hdrKey)
	require.NoError(t, err)
	require.Equal(t, hdr, got)
}

func TestHeaderDecryptWrongKeyFails(t *testing.T) {
	var hdrKey, wrongKey HeaderKey
	wrongKey[0] = 1

	hdr := Header{MsgNum: 1}
	eh := hdr.encrypt(hdrKey)

	_, err := eh.decrypt(wrongKey)
	require.ErrorIs(t, err, ErrAuth)
}

func TestHeaderFromBytesRejectsWrongLength(t *testing.T) {
	_, err := headerFromBytes(make([]byte, headerSize-1))
	require.ErrorIs(t, err, ErrHeaderDecode)
}
