//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package esni

// EsniHandle is what a caller holds: the set of records parsed for one
// DNS answer, the chosen record, and the at-most-one encryption result
// produced from it.
type EsniHandle struct {
	Records []EsniRecord
	Chosen  int

	client *ClientEsni
}

// NewHandle builds a handle from already-parsed records. Chosen is set
// to 0 when records is non-empty, per this draft's "pick the first
// acceptable one" policy.
func NewHandle(records []EsniRecord) *EsniHandle {
	h := &EsniHandle{Records: records}
	if len(records) > 0 {
		h.Chosen = 0
	}
	return h
}

// NewHandleFromBase64 parses records from s and builds a handle from
// them. A parse failure leaves no handle (the caller holds nothing to
// retry encryption on).
func NewHandleFromBase64(s string) (*EsniHandle, error) {
	records, err := ParseAll(s)
	if err != nil {
		return nil, err
	}
	return NewHandle(records), nil
}

// ChosenRecord returns the record selected for encryption, or
// ErrNoRecords if the handle has none.
func (h *EsniHandle) ChosenRecord() (*EsniRecord, error) {
	if len(h.Records) == 0 {
		return nil, ErrNoRecords
	}
	return &h.Records[h.Chosen], nil
}

// Client returns the handle's encryption result, if Encrypt has been
// called successfully.
func (h *EsniHandle) Client() *ClientEsni {
	return h.client
}

// Destroy zeroizes and releases all secret material owned by the
// handle. Safe to call more than once.
func (h *EsniHandle) Destroy() {
	if h.client != nil {
		h.client.destroy()
		h.client = nil
	}
}
