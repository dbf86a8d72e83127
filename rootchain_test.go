package dr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRootChainStepVector checks a published fixed vector's known
// prefix/suffix bytes.
func TestRootChainStepVector(t *testing.T) {
	var root Root
	for i := range root {
		root[i] = 2
	}
	rc := newRootChain(root)

	priv := Private{}
	var pub Public
	for i := range pub {
		pub[i] = 1
	}
	ss, err := dh(priv, pub)
	require.NoError(t, err)

	ck, hk := rc.step(ss)

	require.Equal(t, []byte{0x7A, 0x00}, rc.key[:2])
	require.Equal(t, []byte{0xB3, 0xC0}, rc.key[30:32])

	require.Equal(t, []byte{0x78, 0xCC}, ck[:2])
	require.Equal(t, []byte{0xE4, 0x0C}, ck[30:32])

	require.Equal(t, []byte{0xC3, 0xBF}, hk[:2])
	require.Equal(t, []byte{0x95, 0x86}, hk[30:32])
}

func TestRootChainStepAdvancesKeyInPlace(t *testing.T) {
	var root Root
	rc := newRootChain(root)
	before := rc.key

	var ss SharedSecret
	ss[0] = 1
	rc.step(ss)

	require.NotEqual(t, before, rc.key)
}
