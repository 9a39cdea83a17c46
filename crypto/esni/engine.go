//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import (
	"crypto/rand"
	"fmt"
	"hash"

	"github.com/nyxtls/esni/crypto/hkdf"
	"go.uber.org/zap"
)

// Engine runs the draft-ietf-tls-esni-02 client encryption algorithm
// against a Backend. It bundles the backend with a logger the way the
// teacher's Connection type bundles algorithm state, so a caller can
// swap in a different crypto backend without touching the algorithm.
type Engine struct {
	Backend Backend
	Logger  *zap.Logger
}

// NewEngine builds an Engine with the default standard-library backend
// and a no-op logger.
func NewEngine() *Engine {
	return &Engine{Backend: StdBackend, Logger: zap.NewNop()}
}

// Encrypt runs the ESNI encryption algorithm against handle, producing
// and storing a ClientEsni. It is one-shot: a second call on the same
// handle returns ErrAlreadyEncrypted and leaves the first result
// intact.
func (e *Engine) Encrypt(handle *EsniHandle, protectedName, frontName string, clientRandom [32]byte) error {
	if handle.client != nil {
		return ErrAlreadyEncrypted
	}
	if err := checkNameLength(protectedName); err != nil {
		return err
	}
	if err := checkNameLength(frontName); err != nil {
		return err
	}
	if len(handle.Records) == 0 {
		return ErrNoRecords
	}

	e.logSelection(handle)

	rec := &handle.Records[handle.Chosen]
	suite := rec.CipherSuites[0]
	keyShare := rec.KeyShares[0]

	hashFn, err := e.Backend.HashForSuite(suite)
	if err != nil {
		return err
	}

	// Step 2: client key share.
	clientPriv, clientPub, err := e.Backend.ECDHGenerate(keyShare.Group)
	if err != nil {
		return err
	}

	// Step 3: shared secret.
	shared, err := e.Backend.ECDHDerive(clientPriv, keyShare.PublicKey)
	if err != nil {
		return err
	}

	client := &ClientEsni{
		CipherSuite:    suite,
		ClientKeyShare: clientPub,
		Vars:           CryptoVars{SharedSecret: shared},
	}
	fail := func(err error) error {
		client.destroy()
		return err
	}

	// Step 4: inner plaintext.
	var nonce [16]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fail(cryptoErrorf("rand.Read", err))
	}
	paddedSNI, err := padServerName(protectedName, rec.PaddedLength)
	if err != nil {
		return fail(err)
	}
	inner := clientEsniInner{Nonce: nonce, PaddedSNIList: paddedSNI}.encode()
	zero(nonce[:])
	zero(paddedSNI)
	client.Vars.Plaintext = inner

	// Step 5: ESNIContents / record_digest. draft-ietf-tls-esni-02
	// section 5.1 hashes the record starting after its 2-byte version
	// field, matching SSL_ESNI_server_name_digest in the OpenSSL
	// reference implementation.
	recordDigest := hashBytes(hashFn, rec.Encoded[2:])
	esniContents := buildESNIContents(recordDigest, clientPub, clientRandom)
	digestContents := hashBytes(hashFn, esniContents)

	// Step 6: key schedule.
	zx := hkdf.Extract(hashFn, nil, shared)
	client.Vars.Zx = zx
	keyLen, err := e.Backend.KeyLenForSuite(suite)
	if err != nil {
		return fail(err)
	}
	key := hkdf.ExpandLabel(hashFn, zx, "esni keys", digestContents, keyLen)
	iv := hkdf.ExpandLabel(hashFn, zx, "esni iv", digestContents, 12)
	client.Vars.Key = key
	client.Vars.IV = iv

	// Step 7: AEAD. draft-ietf-tls-esni-02 section 5.1 binds the seal
	// to the ClientHello's client_random, not the ESNIContents bytes
	// already folded into the key schedule.
	aad := append([]byte(nil), clientRandom[:]...)
	ciphertext, err := e.Backend.AEADSeal(suite, key, iv, aad, inner)
	if err != nil {
		return fail(err)
	}

	client.RecordDigest = recordDigest
	client.EncryptedSNI = ciphertext
	client.Vars = CryptoVars{
		SharedSecret:   shared,
		Zx:             zx,
		Key:            key,
		IV:             iv,
		AAD:            aad,
		Plaintext:      inner,
		DigestContents: digestContents,
	}

	handle.client = client
	return nil
}

func (e *Engine) logSelection(handle *EsniHandle) {
	rec := &handle.Records[handle.Chosen]
	if len(handle.Records) > 1 {
		e.Logger.Debug("not implemented: multi-record selection, defaulting to index 0",
			zap.Int("records", len(handle.Records)))
	}
	if len(rec.KeyShares) > 1 {
		e.Logger.Debug("not implemented: multi-key-share selection, defaulting to index 0",
			zap.Int("key_shares", len(rec.KeyShares)))
	}
	if len(rec.CipherSuites) > 1 {
		e.Logger.Debug("not implemented: multi-suite selection, defaulting to index 0",
			zap.Int("cipher_suites", len(rec.CipherSuites)))
	}
}

func hashBytes(hashFn func() hash.Hash, data []byte) []byte {
	h := hashFn()
	h.Write(data)
	return h.Sum(nil)
}

func buildESNIContents(recordDigest, clientKeyShare []byte, clientRandom [32]byte) []byte {
	w := newWriter()
	w.writeUint16LengthPrefixed(func(w *writer) { w.writeBytes(recordDigest) })
	w.writeUint16LengthPrefixed(func(w *writer) { w.writeBytes(clientKeyShare) })
	w.writeUint16LengthPrefixed(func(w *writer) { w.writeBytes(clientRandom[:]) })
	b, err := w.bytes()
	if err != nil {
		panic(fmt.Sprintf("esni: encoding ESNIContents: %v", err))
	}
	return b
}
