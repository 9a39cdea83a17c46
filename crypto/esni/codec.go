//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

import (
	"golang.org/x/crypto/cryptobyte"
)

// reader is a forward-only cursor over an ESNIKeys-style
// length-prefixed binary buffer.
type reader struct {
	s cryptobyte.String
}

func newReader(buf []byte) *reader {
	return &reader{s: cryptobyte.String(buf)}
}

func (r *reader) remaining() int {
	return len(r.s)
}

func (r *reader) readUint8() (uint8, error) {
	var v uint8
	if !r.s.ReadUint8(&v) {
		return 0, ErrShortRead
	}
	return v, nil
}

func (r *reader) readUint16() (uint16, error) {
	var v uint16
	if !r.s.ReadUint16(&v) {
		return 0, ErrShortRead
	}
	return v, nil
}

func (r *reader) readUint64() (uint64, error) {
	var v uint64
	if !r.s.ReadUint64(&v) {
		return 0, ErrShortRead
	}
	return v, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	var v []byte
	if !r.s.ReadBytes(&v, n) {
		return nil, ErrShortRead
	}
	return v, nil
}

// readLengthPrefixed16 reads a 16-bit length L followed by exactly L
// bytes, and returns a reader bounded to those bytes.
func (r *reader) readLengthPrefixed16() (*reader, error) {
	var sub cryptobyte.String
	if !r.s.ReadUint16LengthPrefixed(&sub) {
		return nil, ErrShortRead
	}
	return &reader{s: sub}, nil
}

// writer is a growable big-endian builder, symmetric to reader.
type writer struct {
	b *cryptobyte.Builder
}

func newWriter() *writer {
	return &writer{b: cryptobyte.NewBuilder(nil)}
}

func (w *writer) writeUint8(v uint8) {
	w.b.AddUint8(v)
}

func (w *writer) writeUint16(v uint16) {
	w.b.AddUint16(v)
}

func (w *writer) writeUint64(v uint64) {
	w.b.AddUint64(v)
}

func (w *writer) writeBytes(v []byte) {
	w.b.AddBytes(v)
}

func (w *writer) writeUint16LengthPrefixed(f func(*writer)) {
	w.b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		f(&writer{b: b})
	})
}

func (w *writer) bytes() ([]byte, error) {
	return w.b.Bytes()
}
