// Package dr implements the Double Ratchet algorithm with encrypted
// headers.
//
// Overview
//
// Two endpoints, conventionally Alice and Bob, each hold an evolving
// State. From it they encrypt outbound messages and decrypt inbound
// ones, tolerating out-of-order delivery, dropped messages, and
// periodic rekeying driven by fresh Diffie-Hellman exchanges embedded
// in message headers.
//
// A session has three KDF chains:
//
//   1. a root chain, keyed by a shared secret agreed out of band
//      (the output of some prior key-agreement protocol, e.g. X3DH --
//      not implemented here);
//   2. a sending chain, advanced once per outbound message;
//   3. a receiving chain, advanced once per inbound message, with a
//      bounded store for message keys of messages that arrive out of
//      order or never arrive at all.
//
// Each party's sending chain tracks the other's receiving chain.
// Whenever a DH ratchet step happens -- roughly, once per round trip --
// both chains are rederived from the root chain using a fresh
// Diffie-Hellman output, which is the source of post-compromise
// recovery: an attacker who steals a private key only reads messages
// until the next ratchet step.
//
// Header encryption
//
// Every message header (the sender's ratchet public key, message
// number, and previous-chain length) is itself encrypted under a
// rotating header key. A recipient who cannot decrypt a header with
// its current header key tries the next one; success there is the
// signal that a DH ratchet step is required. This hides the ratchet's
// metadata from anyone who cannot derive the header keys, at the cost
// of the recipient trying, per message, the header keys of its stored
// skipped message keys and then its current and next header keys.
//
// Scope
//
// This package accepts an already-agreed root key and header keys as
// constructor inputs; it does not perform key agreement, does not
// manage identities, does not implement group messaging, and does not
// define any on-wire framing beyond the header/tag byte layout
// documented on Header, EncryptedHeader, and Clue. Transport and
// persistence of State are a caller's concern.
//
// References
//
// https://signal.org/docs/specifications/doubleratchet/doubleratchet.pdf
package dr
