package dr

const rootKDFInfo = "root_kdf_info"

// RootChain is the root-key KDF: each step consumes a fresh DH output
// and emits a new chain key and header key for whichever of the
// sending/receiving chains is being (re)seeded, while advancing its
// own key in place.
type RootChain struct {
	key Root
}

// newRootChain creates a RootChain seeded with an externally agreed
// root key.
func newRootChain(key Root) RootChain {
	return RootChain{key: key}
}

// step derives a new root key (replacing rc's current one), a chain
// key, and a header key from the current root key and input.
func (rc *RootChain) step(input SharedSecret) (ChainKey, HeaderKey) {
	out := hkdfExpand(rc.key[:], input[:], []byte(rootKDFInfo), 96)

	var newRoot Root
	copy(newRoot[:], out[0:32])
	rc.key.wipe()
	rc.key = newRoot

	var ck ChainKey
	copy(ck[:], out[32:64])
	var hk HeaderKey
	copy(hk[:], out[64:96])
	return ck, hk
}

func (rc *RootChain) clone() RootChain {
	return RootChain{key: rc.key}
}

func (rc *RootChain) wipe() {
	rc.key.wipe()
}
