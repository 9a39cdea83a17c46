//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package hkdf implements RFC 5869 HKDF-Extract/Expand, plus the
// ESNI-flavored Expand-Label used by draft-ietf-tls-esni-02. The label
// framing here is deliberately not TLS 1.3's structured HkdfLabel: info
// is the literal ASCII label bytes followed by the context, with no
// length prefixes — see draft-02 section 4.
package hkdf

import (
	"crypto/hmac"
	"hash"
)

// Extract implements HKDF-Extract. When salt is empty, the zero-salt
// of the hash's output length is used, per RFC 5869.
func Extract(hash func() hash.Hash, salt, ikm []byte) []byte {
	if len(salt) == 0 {
		salt = make([]byte, hash().Size())
	}
	mac := hmac.New(hash, salt)
	mac.Write(ikm)
	return mac.Sum(nil)
}

// Expand implements HKDF-Expand, writing len(out) bytes derived from
// prk and info into out.
func Expand(hash func() hash.Hash, prk, info []byte, out []byte) {
	expander := hmac.New(hash, prk)
	counter := []byte{1}

	var prev []byte
	for len(out) > 0 {
		if counter[0] > 1 {
			expander.Reset()
			expander.Write(prev)
		}
		expander.Write(info)
		expander.Write(counter)
		prev = expander.Sum(prev[:0])
		counter[0]++

		n := copy(out, prev)
		out = out[n:]
	}
}

// ExpandLabel implements the ESNI "HKDF-Expand-Label" primitive:
// HKDF-Expand with info built as the literal ASCII label bytes
// followed by context (no length-prefixed HkdfLabel struct, unlike TLS
// 1.3 proper). Returns a freshly allocated outLen-byte slice.
func ExpandLabel(hash func() hash.Hash, prk []byte, label string, context []byte, outLen int) []byte {
	info := make([]byte, 0, len(label)+len(context))
	info = append(info, label...)
	info = append(info, context...)

	out := make([]byte, outLen)
	Expand(hash, prk, info, out)
	return out
}
