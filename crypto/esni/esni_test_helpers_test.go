//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"testing"
)

// buildRecordBytes assembles a well-formed, checksum-correct ESNIKeys
// record for use in tests, with one P-256 key share and one recognized
// cipher suite.
func buildRecordBytes(t *testing.T, paddedLength uint16, notBefore, notAfter uint64) []byte {
	t.Helper()

	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	pub := priv.PublicKey().Bytes()

	w := newWriter()
	w.writeUint16(esniVersion)
	w.writeBytes([]byte{0, 0, 0, 0}) // checksum placeholder
	w.writeUint16LengthPrefixed(func(w *writer) {
		w.writeUint16(uint16(GroupSecp256r1))
		w.writeUint16LengthPrefixed(func(w *writer) { w.writeBytes(pub) })
	})
	w.writeUint16LengthPrefixed(func(w *writer) {
		w.writeUint16(uint16(SuiteAes128GcmSha256))
	})
	w.writeUint16(paddedLength)
	w.writeUint64(notBefore)
	w.writeUint64(notAfter)
	w.writeUint16LengthPrefixed(func(w *writer) {})

	buf, err := w.bytes()
	if err != nil {
		t.Fatalf("build record: %v", err)
	}

	sum := sha256.Sum256(buf)
	copy(buf[2:6], sum[:4])
	return buf
}

func buildRecordBase64(t *testing.T, paddedLength uint16) string {
	t.Helper()
	buf := buildRecordBytes(t, paddedLength, 0, 1<<62)
	return base64.StdEncoding.EncodeToString(buf)
}

// testP256PublicKeyBytes returns a valid uncompressed P-256 point
// encoding, for tests that need a key share to pass point validation
// in parseKeyShares without exercising key-share content itself.
func testP256PublicKeyBytes(t *testing.T) []byte {
	t.Helper()
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return priv.PublicKey().Bytes()
}
