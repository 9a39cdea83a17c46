//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package hkdf

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"testing"
)

func TestExtractMatchesPlainHMAC(t *testing.T) {
	ikm := []byte("input key material")
	salt := []byte("salt value")

	got := Extract(sha256.New, salt, ikm)

	mac := hmac.New(sha256.New, salt)
	mac.Write(ikm)
	want := mac.Sum(nil)

	if !bytes.Equal(got, want) {
		t.Fatalf("Extract = %x, want %x", got, want)
	}
}

func TestExtractEmptySaltUsesZeroedSalt(t *testing.T) {
	ikm := []byte("input key material")

	got := Extract(sha256.New, nil, ikm)

	mac := hmac.New(sha256.New, make([]byte, sha256.Size))
	mac.Write(ikm)
	want := mac.Sum(nil)

	if !bytes.Equal(got, want) {
		t.Fatalf("Extract(nil salt) = %x, want %x", got, want)
	}
}

// HKDF-Expand's defining property: the first n bytes of a longer
// expansion equal the full expansion of length n, since both are built
// from the same T(1), T(2), ... chain.
func TestExpandIsPrefixConsistent(t *testing.T) {
	prk := Extract(sha256.New, []byte("salt"), []byte("ikm"))
	info := []byte("context info")

	short := make([]byte, 20)
	Expand(sha256.New, prk, info, short)

	long := make([]byte, 75)
	Expand(sha256.New, prk, info, long)

	if !bytes.Equal(short, long[:20]) {
		t.Fatalf("short expansion %x is not a prefix of long expansion %x", short, long)
	}
}

func TestExpandIsDeterministic(t *testing.T) {
	prk := Extract(sha256.New, []byte("salt"), []byte("ikm"))
	info := []byte("context info")

	a := make([]byte, 48)
	b := make([]byte, 48)
	Expand(sha256.New, prk, info, a)
	Expand(sha256.New, prk, info, b)

	if !bytes.Equal(a, b) {
		t.Fatalf("Expand is not deterministic: %x != %x", a, b)
	}
}

func TestExpandDifferentInfoDiffers(t *testing.T) {
	prk := Extract(sha256.New, []byte("salt"), []byte("ikm"))

	a := make([]byte, 32)
	b := make([]byte, 32)
	Expand(sha256.New, prk, []byte("info a"), a)
	Expand(sha256.New, prk, []byte("info b"), b)

	if bytes.Equal(a, b) {
		t.Fatalf("different info produced identical output: %x", a)
	}
}

func TestExpandLabelIsUnframedConcatenation(t *testing.T) {
	prk := Extract(sha256.New, []byte("salt"), []byte("ikm"))
	context := []byte{0xaa, 0xbb}

	got := ExpandLabel(sha256.New, prk, "esni keys", context, 16)

	want := make([]byte, 16)
	Expand(sha256.New, prk, append([]byte("esni keys"), context...), want)
	if !bytes.Equal(got, want) {
		t.Fatalf("ExpandLabel = %x, want %x (plain concatenation)", got, want)
	}
}

func TestExpandLabelDifferentLabelsDiffer(t *testing.T) {
	prk := Extract(sha256.New, []byte("salt"), []byte("ikm"))
	context := []byte{0x01, 0x02, 0x03}

	key := ExpandLabel(sha256.New, prk, "esni keys", context, 16)
	iv := ExpandLabel(sha256.New, prk, "esni iv", context, 12)

	if bytes.Equal(key[:12], iv) {
		t.Fatalf("key and iv collide: %x", iv)
	}
}
