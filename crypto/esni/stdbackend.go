//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/chacha20poly1305"
)

// stdBackend is the default Backend, built entirely on the Go
// standard library plus golang.org/x/crypto/chacha20poly1305 for the
// ChaCha20-Poly1305 suite.
type stdBackend struct{}

// StdBackend is the default Backend implementation.
var StdBackend Backend = stdBackend{}

func (stdBackend) HashForSuite(suite CipherSuite) (func() hash.Hash, error) {
	switch suite {
	case SuiteAes128GcmSha256, SuiteChacha20Poly1305Sha256:
		return sha256.New, nil
	case SuiteAes256GcmSha384:
		return sha512.New384, nil
	default:
		return nil, cryptoErrorf("HashForSuite", fmt.Errorf("unrecognized suite %v", suite))
	}
}

func (stdBackend) KeyLenForSuite(suite CipherSuite) (int, error) {
	switch suite {
	case SuiteAes128GcmSha256:
		return 16, nil
	case SuiteAes256GcmSha384:
		return 32, nil
	case SuiteChacha20Poly1305Sha256:
		return chacha20poly1305.KeySize, nil
	default:
		return 0, cryptoErrorf("KeyLenForSuite", fmt.Errorf("unrecognized suite %v", suite))
	}
}

func groupCurve(group NamedGroup) (ecdh.Curve, error) {
	switch group {
	case GroupSecp256r1:
		return ecdh.P256(), nil
	case GroupSecp384r1:
		return ecdh.P384(), nil
	case GroupSecp521r1:
		return ecdh.P521(), nil
	case GroupX25519:
		return ecdh.X25519(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadGroup, group)
	}
}

type stdPrivateKey struct {
	group NamedGroup
	priv  *ecdh.PrivateKey
}

func (k *stdPrivateKey) Group() NamedGroup {
	return k.group
}

func (stdBackend) ECDHGenerate(group NamedGroup) (PrivateKey, []byte, error) {
	curve, err := groupCurve(group)
	if err != nil {
		return nil, nil, cryptoErrorf("ECDHGenerate", err)
	}
	priv, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, cryptoErrorf("ECDHGenerate", err)
	}
	return &stdPrivateKey{group: group, priv: priv}, priv.PublicKey().Bytes(), nil
}

func (stdBackend) ECDHDerive(priv PrivateKey, peerPublic []byte) ([]byte, error) {
	k, ok := priv.(*stdPrivateKey)
	if !ok {
		return nil, cryptoErrorf("ECDHDerive", fmt.Errorf("private key not produced by this backend"))
	}
	curve, err := groupCurve(k.group)
	if err != nil {
		return nil, cryptoErrorf("ECDHDerive", err)
	}
	peerKey, err := curve.NewPublicKey(peerPublic)
	if err != nil {
		return nil, cryptoErrorf("ECDHDerive", fmt.Errorf("invalid peer public key: %w", err))
	}
	shared, err := k.priv.ECDH(peerKey)
	if err != nil {
		return nil, cryptoErrorf("ECDHDerive", err)
	}
	return shared, nil
}

func (stdBackend) AEADSeal(suite CipherSuite, key, iv, aad, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(suite, key)
	if err != nil {
		return nil, cryptoErrorf("AEADSeal", err)
	}
	if len(iv) != aead.NonceSize() {
		return nil, cryptoErrorf("AEADSeal",
			fmt.Errorf("iv length %d, want %d", len(iv), aead.NonceSize()))
	}
	return aead.Seal(nil, iv, plaintext, aad), nil
}

func newAEAD(suite CipherSuite, key []byte) (cipher.AEAD, error) {
	switch suite {
	case SuiteAes128GcmSha256, SuiteAes256GcmSha384:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case SuiteChacha20Poly1305Sha256:
		return chacha20poly1305.New(key)
	default:
		return nil, fmt.Errorf("unrecognized suite %v", suite)
	}
}
