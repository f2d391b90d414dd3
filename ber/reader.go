// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "io"

// Reader parses a borrowed byte slice as a sequence of BER TLV units. A
// Reader allocates nothing: every value it returns is a subslice of the
// buffer it was constructed with. Its cursor only ever moves forward.
//
// A Reader is not safe for concurrent use by multiple goroutines, but a
// Reader and the slices it has already returned may be shared read-only
// across goroutines once reading has finished, since they all alias the same
// caller-owned, never-mutated buffer.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader over buf. The Reader does not copy buf; buf must
// not be modified while the Reader (or any slice it has returned) is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// IsAtEnd reports whether the Reader has consumed the entire buffer.
func (r *Reader) IsAtEnd() bool {
	return r.pos >= len(r.buf)
}

// Next reads one TLV unit from the front of the unread portion of the
// buffer. It returns io.EOF when the Reader is already at the end; that is
// the "no more units" signal, distinct from any other error, which always
// indicates malformed input.
//
// For a constructed Identifier, the returned slice is itself a BER-encoded
// TLV stream; the caller re-parses it by constructing a new Reader over that
// slice. Next does not do this itself.
func (r *Reader) Next() (Identifier, []byte, error) {
	if r.IsAtEnd() {
		return Identifier{}, nil, io.EOF
	}

	id, n, err := DecodeIdentifier(r.buf[r.pos:])
	if err != nil {
		return Identifier{}, nil, err
	}
	start := r.pos + n

	length, n2, err := decodeLength(r.buf[start:])
	if err != nil {
		return Identifier{}, nil, err
	}
	start += n2

	if length.IsIndefinite() {
		value, end, err := scanIndefiniteContent(r.buf[start:])
		if err != nil {
			return Identifier{}, nil, err
		}
		r.pos = start + end
		return id, value, nil
	}

	end := start + int(length)
	if end > len(r.buf) || end < start {
		return Identifier{}, nil, ErrUnexpectedEndOfData
	}
	r.pos = end
	return id, r.buf[start:end], nil
}

// scanIndefiniteContent finds the end-of-contents marker (two consecutive
// 0x00 bytes) in buf. It returns the content preceding the marker and the
// number of bytes consumed, including the marker itself.
//
// This is a flat byte-level scan, not a structure-aware one: it treats any
// 0x00 0x00 byte pair in the stream as the terminator, which is only correct
// when the content is known not to contain a bare 0x00 0x00 outside of a
// legitimate end-of-contents marker. Well-formed content can still contain
// such a pair: string content holding two zero bytes, a zero-length element
// followed by a zero byte, or a nested indefinite-length element's own
// end-of-contents marker all end the scan early. Callers needing a stronger
// guarantee should recursively parse nested TLVs instead of relying on this
// scan.
//
//	Scanning --(0x00)--> FoundOneNul
//	Scanning --(other)-> Scanning
//	FoundOneNul --(0x00)--> terminate
//	FoundOneNul --(other)-> Scanning
func scanIndefiniteContent(buf []byte) (value []byte, consumed int, err error) {
	const (
		scanning = iota
		foundOneNul
	)
	state := scanning
	for i, b := range buf {
		switch state {
		case scanning:
			if b == 0 {
				state = foundOneNul
			}
		case foundOneNul:
			if b == 0 {
				return buf[:i-1], i + 1, nil
			}
			state = scanning
		}
	}
	return nil, 0, ErrUnexpectedEndOfData
}
