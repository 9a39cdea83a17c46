//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import (
	"fmt"
)

// NamedGroup identifies a TLS 1.3 key-exchange group, per RFC 8446
// section 4.2.7.
type NamedGroup uint16

// Named groups recognized by this backend.
const (
	GroupSecp256r1 NamedGroup = 0x0017
	GroupSecp384r1 NamedGroup = 0x0018
	GroupSecp521r1 NamedGroup = 0x0019
	GroupX25519    NamedGroup = 0x001D
)

func (g NamedGroup) String() string {
	name, ok := namedGroupNames[g]
	if ok {
		return name
	}
	return fmt.Sprintf("{NamedGroup %04x}", uint16(g))
}

var namedGroupNames = map[NamedGroup]string{
	GroupSecp256r1: "secp256r1",
	GroupSecp384r1: "secp384r1",
	GroupSecp521r1: "secp521r1",
	GroupX25519:    "x25519",
}

// CipherSuite identifies a TLS 1.3 AEAD cipher suite.
type CipherSuite uint16

// Cipher suites recognized by draft-ietf-tls-esni-02.
const (
	SuiteAes128GcmSha256       CipherSuite = 0x1301
	SuiteAes256GcmSha384       CipherSuite = 0x1302
	SuiteChacha20Poly1305Sha256 CipherSuite = 0x1303
)

func (cs CipherSuite) String() string {
	name, ok := cipherSuiteNames[cs]
	if ok {
		return name
	}
	return fmt.Sprintf("{CipherSuite %04x}", uint16(cs))
}

var cipherSuiteNames = map[CipherSuite]string{
	SuiteAes128GcmSha256:        "TLS_AES_128_GCM_SHA256",
	SuiteAes256GcmSha384:        "TLS_AES_256_GCM_SHA384",
	SuiteChacha20Poly1305Sha256: "TLS_CHACHA20_POLY1305_SHA256",
}

var recognizedCipherSuites = map[CipherSuite]bool{
	SuiteAes128GcmSha256:        true,
	SuiteAes256GcmSha384:        true,
	SuiteChacha20Poly1305Sha256: true,
}

// esniVersion is the only version recognized by draft-02.
const esniVersion = 0xFF01

// maxNameLength is the maximum length accepted for a protected or
// front server name, measured in bytes.
const maxNameLength = 255
