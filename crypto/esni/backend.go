//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import "hash"

// PrivateKey is an opaque ephemeral key-exchange private key produced
// by Backend.ECDHGenerate.
type PrivateKey interface {
	// Group returns the named group this key was generated in.
	Group() NamedGroup
}

// Backend is the capability interface THE CORE consumes for hashing,
// ECDH and AEAD sealing. Any conforming implementation is pluggable;
// stdBackend is the one shipped here. The record checksum (fixed
// SHA-256), HKDF (package crypto/hkdf) and the inner-plaintext nonce
// (crypto/rand) do not go through Backend.
type Backend interface {
	// HashForSuite returns a constructor for the hash algorithm bound
	// to suite's AEAD; each call of it yields a fresh hash.Hash.
	HashForSuite(suite CipherSuite) (func() hash.Hash, error)

	// ECDHGenerate generates an ephemeral key pair in the named group,
	// returning the private key handle and the group's wire-format
	// public key encoding.
	ECDHGenerate(group NamedGroup) (PrivateKey, []byte, error)

	// ECDHDerive computes the shared secret between priv and the
	// peer's wire-format public key bytes.
	ECDHDerive(priv PrivateKey, peerPublic []byte) ([]byte, error)

	// AEADSeal encrypts plaintext under key/iv/aad for suite's AEAD
	// algorithm, returning ciphertext||tag.
	AEADSeal(suite CipherSuite, key, iv, aad, plaintext []byte) ([]byte, error)

	// KeyLenForSuite returns the AEAD key length, in bytes, for suite.
	KeyLenForSuite(suite CipherSuite) (int, error)
}
