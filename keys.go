package dr

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"
)

// Public is an X25519 public key.
type Public [32]byte

// Private is an X25519 private key.
//
// Zero it with wipe once it is no longer needed; Go has no destructors,
// so callers (here, State) must wipe explicitly at every point a
// Private is replaced or discarded.
type Private [32]byte

// SharedSecret is the output of X25519(Private, Public).
type SharedSecret [32]byte

// Root is the root-chain key.
type Root [32]byte

// HeaderKey encrypts and decrypts Headers. It is comparable so it can
// key a map, as SkippedKeys requires.
type HeaderKey [32]byte

// ChainKey is a sending or receiving chain's current key.
type ChainKey [32]byte

// MessageKey is a one-shot key for a single message.
type MessageKey [32]byte

// GeneratePrivate returns a random X25519 private key.
func GeneratePrivate() (Private, error) {
	var priv Private
	if _, err := rand.Read(priv[:]); err != nil {
		return Private{}, err
	}
	return priv, nil
}

// PublicFromPrivate derives the X25519 public key for priv.
func PublicFromPrivate(priv Private) Public {
	out, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		// Only fails on malformed input lengths, which [32]byte rules out.
		panic("dr: derive public key: " + err.Error())
	}
	var pub Public
	copy(pub[:], out)
	return pub
}

// dh computes the X25519 shared secret between priv and pub.
func dh(priv Private, pub Public) (SharedSecret, error) {
	var ss SharedSecret
	out, err := curve25519.X25519(priv[:], pub[:])
	if err != nil {
		return SharedSecret{}, err
	}
	copy(ss[:], out)
	return ss, nil
}

// wipe zeroes p's backing array.
func (p *Private) wipe() { wipe(p[:]) }

// wipe zeroes r's backing array.
func (r *Root) wipe() { wipe(r[:]) }

// wipe zeroes h's backing array.
func (h *HeaderKey) wipe() { wipe(h[:]) }

// wipe zeroes c's backing array.
func (c *ChainKey) wipe() { wipe(c[:]) }

// wipe zeroes m's backing array.
func (m *MessageKey) wipe() { wipe(m[:]) }

// wipe zeroes s's backing array.
func (s *SharedSecret) wipe() { wipe(s[:]) }
