package dr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendChainStepBeforeUpgradeFails(t *testing.T) {
	var nextHdrKey HeaderKey
	sc := newSendChain(nil, nil, nextHdrKey)

	_, _, _, _, err := sc.step()
	require.ErrorIs(t, err, ErrNoKey)
}

func TestSendChainStepAdvancesMsgNum(t *testing.T) {
	key := ChainKey{1}
	hdrKey := HeaderKey{2}
	sc := newSendChain(&key, &hdrKey, HeaderKey{3})

	_, n0, _, prev0, err := sc.step()
	require.NoError(t, err)
	require.Equal(t, uint32(0), n0)
	require.Equal(t, uint32(0), prev0)

	_, n1, _, _, err := sc.step()
	require.NoError(t, err)
	require.Equal(t, uint32(1), n1)
}

func TestSendChainUpgradeResetsMsgNum(t *testing.T) {
	key := ChainKey{1}
	hdrKey := HeaderKey{2}
	sc := newSendChain(&key, &hdrKey, HeaderKey{3})

	sc.step()
	sc.step()

	sc.upgrade(ChainKey{4}, HeaderKey{5})

	_, n, _, prev, err := sc.step()
	require.NoError(t, err)
	require.Equal(t, uint32(0), n)
	require.Equal(t, uint32(2), prev)
}

func TestSendChainCloneIsIndependent(t *testing.T) {
	key := ChainKey{1}
	hdrKey := HeaderKey{2}
	sc := newSendChain(&key, &hdrKey, HeaderKey{3})

	clone := sc.clone()
	clone.step()

	require.Equal(t, uint32(0), sc.nextMsgNum)
	require.Equal(t, uint32(1), clone.nextMsgNum)
}
