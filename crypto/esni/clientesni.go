//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import "fmt"

// ClientEsni is the result of one encryption: the logical
// ClientEncryptedSNI tuple, plus the intermediate secrets kept for
// testability and diagnostics.
type ClientEsni struct {
	CipherSuite     CipherSuite
	ClientKeyShare  []byte
	RecordDigest    []byte
	EncryptedSNI    []byte

	Vars CryptoVars
}

// CryptoVars holds the intermediate key-schedule material produced
// while computing a ClientEsni. Kept for tests and diagnostics; must
// be zeroized alongside the rest of the handle.
type CryptoVars struct {
	SharedSecret    []byte
	Zx              []byte
	Key             []byte
	IV              []byte
	AAD             []byte
	Plaintext       []byte
	DigestContents  []byte
}

// clientEsniInner is the plaintext encrypted by the engine: a 16-byte
// nonce followed by the padded ServerNameList encoding.
type clientEsniInner struct {
	Nonce         [16]byte
	PaddedSNIList []byte
}

// encode serializes the inner plaintext as
// u16(len(Nonce)) || Nonce || PaddedSNIList.
func (in clientEsniInner) encode() []byte {
	w := newWriter()
	w.writeUint16(uint16(len(in.Nonce)))
	w.writeBytes(in.Nonce[:])
	w.writeBytes(in.PaddedSNIList)
	b, err := w.bytes()
	if err != nil {
		panic(fmt.Sprintf("esni: encoding inner plaintext: %v", err))
	}
	return b
}

func (c *ClientEsni) destroy() {
	zero(c.Vars.SharedSecret)
	zero(c.Vars.Zx)
	zero(c.Vars.Key)
	zero(c.Vars.IV)
	zero(c.Vars.Plaintext)
	c.Vars = CryptoVars{}
	c.ClientKeyShare = nil
	c.RecordDigest = nil
	c.EncryptedSNI = nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
