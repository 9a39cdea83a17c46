//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"
)

// KeyShareEntry is one (group, public key) pair offered by the
// server's ESNIKeys record.
type KeyShareEntry struct {
	Group     NamedGroup
	PublicKey []byte
}

// EsniRecord is one parsed, checksum-verified ESNIKeys record. It is
// immutable after Parse returns it.
type EsniRecord struct {
	Version      uint16
	Checksum     [4]byte
	KeyShares    []KeyShareEntry
	CipherSuites []CipherSuite
	PaddedLength uint16
	NotBefore    uint64
	NotAfter     uint64

	// Encoded is the verbatim decoded record bytes, kept so that
	// record_digest can later be computed over exactly the published
	// bytes.
	Encoded []byte
}

// Parse decodes and validates a single base64-encoded ESNIKeys record.
// An empty string is rejected with ErrBadBase64.
func Parse(s string) (*EsniRecord, error) {
	if s == "" {
		return nil, ErrBadBase64
	}

	buf, err := decodeBase64(s)
	if err != nil {
		return nil, err
	}
	if len(buf) < 10 {
		return nil, fmt.Errorf("%w: record too short (%d bytes)", ErrShortRead, len(buf))
	}
	if err := checkChecksum(buf); err != nil {
		return nil, err
	}

	r := newReader(buf)
	rec := &EsniRecord{}

	version, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	if version != esniVersion {
		return nil, fmt.Errorf("%w: got 0x%04x, want 0x%04x", ErrBadVersion, version, esniVersion)
	}
	rec.Version = version

	checksum, err := r.readBytes(4)
	if err != nil {
		return nil, err
	}
	copy(rec.Checksum[:], checksum)

	if err := parseKeyShares(r, rec); err != nil {
		return nil, err
	}
	if err := parseCipherSuites(r, rec); err != nil {
		return nil, err
	}

	paddedLength, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	if paddedLength <= 5 {
		return nil, fmt.Errorf("%w: padded_length %d must be > 5", ErrShortRead, paddedLength)
	}
	rec.PaddedLength = paddedLength

	notBefore, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	notAfter, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	if notBefore > notAfter {
		return nil, fmt.Errorf("%w: not_before %d > not_after %d", ErrShortRead, notBefore, notAfter)
	}
	rec.NotBefore = notBefore
	rec.NotAfter = notAfter

	extensions, err := r.readLengthPrefixed16()
	if err != nil {
		return nil, err
	}
	if extensions.remaining() != 0 {
		return nil, ErrUnsupportedExtensions
	}

	if r.remaining() != 0 {
		return nil, ErrTrailingBytes
	}

	rec.Encoded = buf
	return rec, nil
}

// ParseAll parses a set of ";"-separated, individually base64-encoded
// ESNIKeys records, as some resolvers return when multiple records are
// multiplexed under one RR value. Each record's semantics are exactly
// those of Parse; this is additive convenience, not a new primitive.
func ParseAll(s string) ([]EsniRecord, error) {
	if s == "" {
		return nil, ErrBadBase64
	}
	parts := splitRecords(s)
	records := make([]EsniRecord, 0, len(parts))
	for _, p := range parts {
		rec, err := Parse(p)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func splitRecords(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func decodeBase64(s string) ([]byte, error) {
	padCount := 0
	for i := len(s) - 1; i >= 0 && s[i] == '='; i-- {
		padCount++
	}
	if padCount > 2 {
		return nil, fmt.Errorf("%w: too many padding bytes (%d)", ErrBadBase64, padCount)
	}
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadBase64, err)
	}
	return buf, nil
}

// checkChecksum verifies that buf[2:6] equals the first 4 bytes of
// SHA-256 over buf with those 4 bytes zeroed.
func checkChecksum(buf []byte) error {
	scratch := make([]byte, len(buf))
	copy(scratch, buf)
	for i := 2; i < 6; i++ {
		scratch[i] = 0
	}
	sum := sha256.Sum256(scratch)
	for i := 0; i < 4; i++ {
		if sum[i] != buf[2+i] {
			return ErrBadChecksum
		}
	}
	return nil
}

func parseKeyShares(r *reader, rec *EsniRecord) error {
	sub, err := r.readLengthPrefixed16()
	if err != nil {
		return err
	}
	for sub.remaining() > 0 {
		group, err := sub.readUint16()
		if err != nil {
			return err
		}
		pk, err := sub.readLengthPrefixed16()
		if err != nil {
			return err
		}
		pkBytes, err := pk.readBytes(pk.remaining())
		if err != nil {
			return err
		}
		if len(pkBytes) == 0 {
			return fmt.Errorf("%w: empty public key for group %04x", ErrBadGroup, group)
		}
		g := NamedGroup(group)
		curve, err := groupCurve(g)
		if err != nil {
			return fmt.Errorf("%w: group %04x", ErrBadGroup, group)
		}
		if _, err := curve.NewPublicKey(pkBytes); err != nil {
			return fmt.Errorf("%w: invalid point encoding for group %v: %v", ErrBadGroup, g, err)
		}
		rec.KeyShares = append(rec.KeyShares, KeyShareEntry{
			Group:     g,
			PublicKey: pkBytes,
		})
	}
	if len(rec.KeyShares) == 0 {
		return fmt.Errorf("%w: key_shares is empty", ErrBadGroup)
	}
	return nil
}

// Valid reports whether now falls within the record's published
// validity window. Parse and Encrypt never call this automatically;
// callers that care about the window must check it themselves.
func (rec *EsniRecord) Valid(now time.Time) bool {
	t := uint64(now.Unix())
	return t >= rec.NotBefore && t <= rec.NotAfter
}

func parseCipherSuites(r *reader, rec *EsniRecord) error {
	sub, err := r.readLengthPrefixed16()
	if err != nil {
		return err
	}
	n := sub.remaining()
	if n%2 != 0 {
		return fmt.Errorf("%w: cipher_suites length %d is not a multiple of 2", ErrNoCipherSuite, n)
	}
	for sub.remaining() > 0 {
		id, err := sub.readUint16()
		if err != nil {
			return err
		}
		cs := CipherSuite(id)
		if recognizedCipherSuites[cs] {
			rec.CipherSuites = append(rec.CipherSuites, cs)
		}
		// Unrecognized suites are silently dropped, matching the
		// OpenSSL reference decoder's forward-compatible handling of
		// an ESNIKeys record advertising a newer cipher suite.
	}
	if len(rec.CipherSuites) == 0 {
		return ErrNoCipherSuite
	}
	return nil
}
