package dr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMsgChainStepVector checks a published fixed vector's known
// prefix and suffix bytes (only these are published, eliding the
// middle of each 32-byte value).
func TestMsgChainStepVector(t *testing.T) {
	var ck ChainKey
	for i := range ck {
		ck[i] = 5
	}

	newCK, mk := stepMsgChain(ck)

	require.Equal(t, []byte{0xD1, 0xD4}, newCK[:2])
	require.Equal(t, []byte{0xEB, 0x50}, newCK[30:32])

	require.Equal(t, []byte{0x0D, 0x8B}, mk[:2])
	require.Equal(t, []byte{0xA4, 0xA2}, mk[30:32])
}

func TestMsgChainStepDeterministic(t *testing.T) {
	var ck ChainKey
	for i := range ck {
		ck[i] = 9
	}

	ck1, mk1 := stepMsgChain(ck)
	ck2, mk2 := stepMsgChain(ck)
	require.Equal(t, ck1, ck2)
	require.Equal(t, mk1, mk2)
}
