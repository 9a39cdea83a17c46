//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"
)

// Dump writes a labeled, hex-dumped, human-readable rendering of
// handle to w. The format is not a stability surface — tests compare
// structural fields, never this text.
func Dump(w io.Writer, handle *EsniHandle) {
	if len(handle.Records) == 0 {
		fmt.Fprintf(w, "EsniHandle: no records\n")
		return
	}
	for i := range handle.Records {
		marker := "  "
		if i == handle.Chosen {
			marker = "* "
		}
		fmt.Fprintf(w, "%srecord[%d]:\n", marker, i)
		dumpRecord(w, &handle.Records[i])
	}
	if c := handle.Client(); c != nil {
		fmt.Fprintf(w, "client_esni:\n")
		dumpClientEsni(w, c)
	}
}

func dumpRecord(w io.Writer, rec *EsniRecord) {
	fmt.Fprintf(w, "  version     : 0x%04x\n", rec.Version)
	fmt.Fprintf(w, "  checksum    : %x\n", rec.Checksum)
	fmt.Fprintf(w, "  key_shares  :\n")
	for _, ks := range rec.KeyShares {
		fmt.Fprintf(w, "    group=%v\n%s", ks.Group, hex.Dump(ks.PublicKey))
	}
	fmt.Fprintf(w, "  cipher_suites:\n")
	for _, cs := range rec.CipherSuites {
		fmt.Fprintf(w, "    %v\n", cs)
	}
	fmt.Fprintf(w, "  padded_length: %d\n", rec.PaddedLength)
	fmt.Fprintf(w, "  not_before  : %d (%s)\n", rec.NotBefore, unixString(rec.NotBefore))
	fmt.Fprintf(w, "  not_after   : %d (%s)\n", rec.NotAfter, unixString(rec.NotAfter))
	fmt.Fprintf(w, "  extensions  : 0\n")
}

func dumpClientEsni(w io.Writer, c *ClientEsni) {
	fmt.Fprintf(w, "  cipher_suite    : %v\n", c.CipherSuite)
	fmt.Fprintf(w, "  client_key_share:\n%s", hex.Dump(c.ClientKeyShare))
	fmt.Fprintf(w, "  record_digest   :\n%s", hex.Dump(c.RecordDigest))
	fmt.Fprintf(w, "  encrypted_sni   : %d bytes\n%s", len(c.EncryptedSNI), hex.Dump(c.EncryptedSNI))
	fmt.Fprintf(w, "  crypto_vars:\n")
	fmt.Fprintf(w, "    shared  :\n%s", hex.Dump(c.Vars.SharedSecret))
	fmt.Fprintf(w, "    Zx      :\n%s", hex.Dump(c.Vars.Zx))
	fmt.Fprintf(w, "    key     :\n%s", hex.Dump(c.Vars.Key))
	fmt.Fprintf(w, "    iv      :\n%s", hex.Dump(c.Vars.IV))
	fmt.Fprintf(w, "    aad     :\n%s", hex.Dump(c.Vars.AAD))
	fmt.Fprintf(w, "    plaintext:\n%s", hex.Dump(c.Vars.Plaintext))
	fmt.Fprintf(w, "    digest_contents:\n%s", hex.Dump(c.Vars.DigestContents))
}

func unixString(sec uint64) string {
	if sec > 1<<62 {
		return "effectively never"
	}
	return time.Unix(int64(sec), 0).UTC().Format(time.RFC3339)
}
