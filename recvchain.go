package dr

// RecvChain is the receiving counterpart of SendChain: it additionally
// tracks skipped message keys so messages that arrive out of order (or
// never arrive) don't block the chain.
type RecvChain struct {
	hdrKey        *HeaderKey
	key           *ChainKey
	nextHdrKey    HeaderKey
	nextMsgNum    uint32
	skipped       SkippedKeys
	skippedMaxCnt uint32
}

// newRecvChain creates a RecvChain. nextHdrKey is initially a shared
// secret agreed out of band; skippedMaxCnt bounds how many message
// keys a single skipMsgKeys call may skip, rejecting pathological gaps.
func newRecvChain(nextHdrKey HeaderKey, skippedMaxCnt uint32) RecvChain {
	return RecvChain{
		nextHdrKey:    nextHdrKey,
		skipped:       newSkippedKeys(),
		skippedMaxCnt: skippedMaxCnt,
	}
}

// decryptHeader tries rc's current header key, then its next header
// key, against encryptedHdr. The returned bool reports whether the
// next header key was the one that worked, meaning the caller must
// upgrade the chain (a DH ratchet has arrived) once the message itself
// has been authenticated.
func (rc *RecvChain) decryptHeader(encryptedHdr EncryptedHeader) (Header, bool, error) {
	if rc.hdrKey != nil {
		if hdr, err := encryptedHdr.decrypt(*rc.hdrKey); err == nil {
			return hdr, false, nil
		}
	}
	if hdr, err := encryptedHdr.decrypt(rc.nextHdrKey); err == nil {
		return hdr, true, nil
	}
	return Header{}, false, ErrKeysNotFit
}

// popSkipped looks up a previously skipped message key matching
// encryptedHdr.
func (rc *RecvChain) popSkipped(encryptedHdr EncryptedHeader) (*MessageKey, error) {
	return rc.skipped.pop(encryptedHdr)
}

// skipMsgKeys advances the chain's KDF up to (not including) until,
// stashing each intermediate message key in rc.skipped so it can still
// be used if its message arrives later or out of order.
func (rc *RecvChain) skipMsgKeys(until uint32) error {
	if rc.nextMsgNum+rc.skippedMaxCnt < until {
		return ErrTooMuch
	}

	for rc.nextMsgNum < until {
		if rc.key == nil {
			return ErrNoKey
		}
		newCK, mk := stepMsgChain(*rc.key)
		rc.key.wipe()
		*rc.key = newCK
		rc.nextMsgNum++

		if rc.hdrKey == nil {
			return ErrNoHeaderKey
		}
		rc.skipped.insert(*rc.hdrKey, rc.nextMsgNum-1, mk)
	}
	return nil
}

// step advances the chain by one message and returns its key.
func (rc *RecvChain) step() (MessageKey, error) {
	if rc.key == nil {
		return MessageKey{}, ErrNoKey
	}
	newCK, mk := stepMsgChain(*rc.key)
	rc.key.wipe()
	*rc.key = newCK
	rc.nextMsgNum++
	return mk, nil
}

// upgrade installs a new chain key and header key after a DH ratchet.
func (rc *RecvChain) upgrade(newKey ChainKey, newNextHdrKey HeaderKey) {
	cur := rc.nextHdrKey
	rc.hdrKey = &cur
	rc.nextHdrKey = newNextHdrKey

	key := newKey
	rc.key = &key

	rc.nextMsgNum = 0
}

// createDraft returns a working copy of rc for the caller to mutate
// speculatively. The draft starts with empty skipped keys: any skip
// accounting done against the draft must be merged back explicitly by
// commitDraft, never replacing rc's existing skipped keys.
func (rc *RecvChain) createDraft() RecvChain {
	draft := RecvChain{
		nextHdrKey:    rc.nextHdrKey,
		nextMsgNum:    rc.nextMsgNum,
		skipped:       newSkippedKeys(),
		skippedMaxCnt: rc.skippedMaxCnt,
	}
	if rc.hdrKey != nil {
		hk := *rc.hdrKey
		draft.hdrKey = &hk
	}
	if rc.key != nil {
		k := *rc.key
		draft.key = &k
	}
	return draft
}

// commitDraft replaces rc's state with draft's, merging (not
// replacing) the skipped-key map.
func (rc *RecvChain) commitDraft(draft RecvChain) {
	if rc.hdrKey != nil {
		rc.hdrKey.wipe()
	}
	rc.hdrKey = draft.hdrKey
	if rc.key != nil {
		rc.key.wipe()
	}
	rc.key = draft.key
	rc.nextHdrKey.wipe()
	rc.nextHdrKey = draft.nextHdrKey
	rc.nextMsgNum = draft.nextMsgNum
	rc.skipped.merge(draft.skipped)
	rc.skippedMaxCnt = draft.skippedMaxCnt
}

func (rc *RecvChain) wipe() {
	if rc.hdrKey != nil {
		rc.hdrKey.wipe()
	}
	if rc.key != nil {
		rc.key.wipe()
	}
	rc.nextHdrKey.wipe()
	rc.skipped.wipe()
}
