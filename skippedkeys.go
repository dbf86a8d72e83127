package dr

// SkippedKeys stores message keys for messages that arrived out of
// order relative to ones still missing, keyed first by the header key
// of the chain they belong to, then by message number within that
// chain.
//
// Keys are not a (HeaderKey, msgNum) pair because pop needs to try
// decrypting the incoming header under each candidate HeaderKey in
// turn; a flat map couldn't do that lookup.
type SkippedKeys struct {
	m map[HeaderKey]map[uint32]MessageKey
}

// newSkippedKeys creates empty storage.
func newSkippedKeys() SkippedKeys {
	return SkippedKeys{m: make(map[HeaderKey]map[uint32]MessageKey)}
}

// insert records the message key for msgNum under hdrKey's chain.
func (sk *SkippedKeys) insert(hdrKey HeaderKey, msgNum uint32, mk MessageKey) {
	values, ok := sk.m[hdrKey]
	if !ok {
		values = make(map[uint32]MessageKey)
		sk.m[hdrKey] = values
	}
	values[msgNum] = mk
}

// pop tries every known header key against encryptedHdr; on the first
// key that decrypts it, looks up the message key for the decoded
// message number and removes it. Returns nil, nil if no key fits or no
// skipped entry matches.
//
// Matching the original's iteration order guarantee: once a header key
// decrypts successfully, a miss on the message number stops the scan
// rather than falling through to other header keys, since a decrypting
// header key identifies which chain the message belongs to.
func (sk *SkippedKeys) pop(encryptedHdr EncryptedHeader) (*MessageKey, error) {
	var emptyHdrKey *HeaderKey

	for hdrKey, values := range sk.m {
		hdr, err := encryptedHdr.decrypt(hdrKey)
		if err != nil {
			continue
		}

		mk, ok := values[hdr.MsgNum]
		if !ok {
			break
		}
		delete(values, hdr.MsgNum)

		if len(values) == 0 {
			k := hdrKey
			emptyHdrKey = &k
		}

		if emptyHdrKey != nil {
			delete(sk.m, *emptyHdrKey)
		}
		return &mk, nil
	}

	return nil, nil
}

func (sk *SkippedKeys) len() int {
	n := 0
	for _, values := range sk.m {
		n += len(values)
	}
	return n
}

// merge adds other's entries into sk, used when committing a draft
// receiving chain: the draft's skipped keys are additive, never a
// replacement.
func (sk *SkippedKeys) merge(other SkippedKeys) {
	for hdrKey, values := range other.m {
		for msgNum, mk := range values {
			sk.insert(hdrKey, msgNum, mk)
		}
	}
}

func (sk *SkippedKeys) wipe() {
	for _, values := range sk.m {
		for msgNum, mk := range values {
			mk.wipe()
			delete(values, msgNum)
		}
	}
}
