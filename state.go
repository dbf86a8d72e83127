package dr

// State is one side of a Double Ratchet session: a local private key,
// the last-seen remote public key, and the three chains that derive
// message keys from them.
//
// State is exclusively owned by its caller. It has no interior
// mutability and is not safe to use concurrently without external
// synchronization; independent State values may be driven from
// separate goroutines freely.
type State struct {
	localPrivate Private
	remotePublic *Public
	recv         RecvChain
	root         RootChain
	send         SendChain
}

// NewAlice creates the initiator's State. Alice knows Bob's public key
// up front, so her constructor immediately performs one root-chain
// step to seed her sending chain; her receiving chain stays dormant
// until Bob's first reply triggers a DH ratchet.
func NewAlice(bobPublic Public, rootKey Root, sendHdrKey, recvNextHdrKey HeaderKey, skippedMaxCnt uint32) (*State, error) {
	localPrivate, err := GeneratePrivate()
	if err != nil {
		return nil, err
	}

	root := newRootChain(rootKey)
	ss, err := dh(localPrivate, bobPublic)
	if err != nil {
		return nil, err
	}
	sendKey, sendNextHdrKey := root.step(ss)
	ss.wipe()

	pub := bobPublic
	return &State{
		localPrivate: localPrivate,
		remotePublic: &pub,
		recv:         newRecvChain(recvNextHdrKey, skippedMaxCnt),
		root:         root,
		send:         newSendChain(&sendKey, &sendHdrKey, sendNextHdrKey),
	}, nil
}

// NewBob creates the responder's State. Both chains sit dormant (no
// chain key, no current header key) until Bob's first Decrypt
// performs the DH ratchet that seeds them.
func NewBob(private Private, rootKey Root, sendNextHdrKey, recvNextHdrKey HeaderKey, skippedMaxCnt uint32) *State {
	return &State{
		localPrivate: private,
		recv:         newRecvChain(recvNextHdrKey, skippedMaxCnt),
		root:         newRootChain(rootKey),
		send:         newSendChain(nil, nil, sendNextHdrKey),
	}
}

// clone deep-copies s for use as a draft. The skipped-keys map is
// deliberately reset to empty; commitDraft merges it back rather than
// replacing the live map.
func (s *State) clone() State {
	var remotePublic *Public
	if s.remotePublic != nil {
		p := *s.remotePublic
		remotePublic = &p
	}
	return State{
		localPrivate: s.localPrivate,
		remotePublic: remotePublic,
		recv:         s.recv.createDraft(),
		root:         s.root.clone(),
		send:         s.send.clone(),
	}
}

// commit replaces s's state with draft's, merging the draft's
// newly-skipped keys into s's existing skipped-keys map.
func (s *State) commit(draft State) {
	s.localPrivate.wipe()
	s.localPrivate = draft.localPrivate
	s.remotePublic = draft.remotePublic
	s.root.wipe()
	s.root = draft.root
	s.send.wipe()
	s.send = draft.send
	s.recv.commitDraft(draft.recv)
}

// Encrypt encrypts buf in place and authenticates it, along with the
// entire encrypted header (ciphertext and tag), against assoc. It
// returns the Clue the receiver needs to decrypt buf.
func (s *State) Encrypt(buf []byte, assoc []byte) (Clue, error) {
	draft := s.clone()

	mk, msgNum, hdrKey, prevMsgsCnt, err := draft.send.step()
	if err != nil {
		return Clue{}, err
	}

	hdr := Header{
		PublicKey:        PublicFromPrivate(draft.localPrivate),
		MsgNum:           msgNum,
		PrevChainMsgsCnt: prevMsgsCnt,
	}
	eh := hdr.encrypt(hdrKey)

	bufTag := cipherEncrypt(mk[:], buf, [][]byte{assoc, eh.Bytes()})

	s.commit(draft)
	return Clue{BufTag: bufTag, EncryptedHeader: eh}, nil
}

// Decrypt authenticates and decrypts buf in place using clue and
// assoc. On any failure other than the skipped-keys fast path, s is
// left byte-identical to its pre-call image.
func (s *State) Decrypt(buf []byte, assoc []byte, clue Clue) error {
	ehBytes := clue.EncryptedHeader.Bytes()

	// Fast path: a key stashed from an earlier out-of-order arrival.
	// This mutates live state directly (entries are removed as soon as
	// they're matched) rather than going through a draft, since the
	// removal is correct bookkeeping regardless of cipher outcome.
	if mk, err := s.recv.popSkipped(clue.EncryptedHeader); err != nil {
		return err
	} else if mk != nil {
		if err := cipherDecrypt(mk[:], buf, [][]byte{assoc, ehBytes}, clue.BufTag); err != nil {
			return ErrAuth
		}
		return nil
	}

	draft := s.clone()

	hdr, needRatchet, err := draft.recv.decryptHeader(clue.EncryptedHeader)
	if err != nil {
		return err
	}

	if needRatchet {
		if err := draft.recv.skipMsgKeys(hdr.PrevChainMsgsCnt); err != nil {
			return err
		}
		if err := draft.dhRatchet(hdr.PublicKey); err != nil {
			return err
		}
	}

	if err := draft.recv.skipMsgKeys(hdr.MsgNum); err != nil {
		return err
	}

	mk, err := draft.recv.step()
	if err != nil {
		return err
	}

	if err := cipherDecrypt(mk[:], buf, [][]byte{assoc, ehBytes}, clue.BufTag); err != nil {
		return ErrAuth
	}

	s.commit(draft)
	return nil
}

// dhRatchet performs a Diffie-Hellman ratchet step against a newly
// observed remote public key: it reseeds the receiving chain from the
// old local private key, generates a fresh local key pair, then
// reseeds the sending chain from the new one.
func (s *State) dhRatchet(newRemotePublic Public) error {
	pub := newRemotePublic
	s.remotePublic = &pub

	ss, err := dh(s.localPrivate, newRemotePublic)
	if err != nil {
		return err
	}
	ck, hk := s.root.step(ss)
	ss.wipe()
	s.recv.upgrade(ck, hk)

	newPrivate, err := GeneratePrivate()
	if err != nil {
		return err
	}
	s.localPrivate.wipe()
	s.localPrivate = newPrivate

	ss, err = dh(s.localPrivate, newRemotePublic)
	if err != nil {
		return err
	}
	ck, hk = s.root.step(ss)
	ss.wipe()
	s.send.upgrade(ck, hk)

	return nil
}

// Wipe zeroes every key-bearing field of s. Call it once s is no
// longer needed; Go has no destructors, so callers own this call.
func (s *State) Wipe() {
	s.localPrivate.wipe()
	s.recv.wipe()
	s.root.wipe()
	s.send.wipe()
}
