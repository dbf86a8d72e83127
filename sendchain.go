package dr

// SendChain is the forward-only sending chain. It produces a fresh
// message key, its message number, the header key to encrypt the
// message's header under, and the previous chain's message count,
// once per step.
//
// Bob's SendChain starts with no chain key and no header key: he
// cannot send until his first DH ratchet (triggered by decrypting
// Alice's first message) seeds it.
type SendChain struct {
	hdrKey      *HeaderKey
	key         *ChainKey
	nextHdrKey  HeaderKey
	nextMsgNum  uint32
	prevMsgsCnt uint32
}

// newSendChain creates a SendChain. key and hdrKey are nil for Bob's
// initial (dormant) chain.
func newSendChain(key *ChainKey, hdrKey *HeaderKey, nextHdrKey HeaderKey) SendChain {
	return SendChain{hdrKey: hdrKey, key: key, nextHdrKey: nextHdrKey}
}

// step moves the chain forward one message, returning the key material
// for the caller to encrypt with.
func (sc *SendChain) step() (mk MessageKey, msgNum uint32, hdrKey HeaderKey, prevMsgsCnt uint32, err error) {
	if sc.key == nil {
		return MessageKey{}, 0, HeaderKey{}, 0, ErrNoKey
	}
	if sc.hdrKey == nil {
		return MessageKey{}, 0, HeaderKey{}, 0, ErrNoHeaderKey
	}

	newCK, mk := stepMsgChain(*sc.key)
	sc.key.wipe()
	*sc.key = newCK

	msgNum = sc.nextMsgNum
	hdrKey = *sc.hdrKey
	prevMsgsCnt = sc.prevMsgsCnt
	sc.nextMsgNum++
	return mk, msgNum, hdrKey, prevMsgsCnt, nil
}

// upgrade installs a new chain key and header key after a DH ratchet,
// carrying the old next-header-key forward as the chain's current
// header key.
func (sc *SendChain) upgrade(newKey ChainKey, newNextHdrKey HeaderKey) {
	cur := sc.nextHdrKey
	sc.hdrKey = &cur
	sc.nextHdrKey = newNextHdrKey

	key := newKey
	sc.key = &key

	sc.prevMsgsCnt = sc.nextMsgNum
	sc.nextMsgNum = 0
}

func (sc *SendChain) clone() SendChain {
	out := SendChain{
		nextHdrKey:  sc.nextHdrKey,
		nextMsgNum:  sc.nextMsgNum,
		prevMsgsCnt: sc.prevMsgsCnt,
	}
	if sc.hdrKey != nil {
		hk := *sc.hdrKey
		out.hdrKey = &hk
	}
	if sc.key != nil {
		k := *sc.key
		out.key = &k
	}
	return out
}

func (sc *SendChain) wipe() {
	if sc.hdrKey != nil {
		sc.hdrKey.wipe()
	}
	if sc.key != nil {
		sc.key.wipe()
	}
	sc.nextHdrKey.wipe()
}
