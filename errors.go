package dr

import "errors"

// Sentinel errors returned by this package. Callers should compare
// against these with errors.Is; wrapped context (if any) is added with
// fmt.Errorf's %w.
var (
	// ErrAuth means a ciphertext or header failed authentication.
	ErrAuth = errors.New("dr: authentication failed")

	// ErrHeaderDecode means an EncryptedHeader's plaintext image did
	// not decode to a well-formed Header after decryption, or that
	// ClueFromBytes was given a buffer that is not clueSize bytes long.
	ErrHeaderDecode = errors.New("dr: malformed header")

	// ErrNoKey means a chain was asked to step before it had a chain
	// key. This happens to Bob's SendChain before his first DH
	// ratchet.
	ErrNoKey = errors.New("dr: chain has no key yet")

	// ErrNoHeaderKey means a chain was asked to step before it had a
	// header key.
	ErrNoHeaderKey = errors.New("dr: chain has no header key yet")

	// ErrTooMuch means decrypting a message would require skipping
	// more message keys than the configured limit, so the message is
	// rejected rather than used as a denial-of-service vector.
	ErrTooMuch = errors.New("dr: too many skipped messages")

	// ErrKeysNotFit means neither the receiving chain's current nor
	// its next header key could decrypt the incoming header, and no
	// skipped message key matched it.
	ErrKeysNotFit = errors.New("dr: header does not fit any known key")
)
