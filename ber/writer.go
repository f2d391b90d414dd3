// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"io"

	"go.kepler.dev/asn1"
)

// Writer emits BER TLV units to a caller-provided sink. Writer writes
// definite-length TLVs in DER-conformant minimal form; indefinite-length
// emission is offered as an explicit, opt-in BER feature and is not
// DER-conformant.
//
// A Writer exclusively owns its sink for the duration of a call; concurrent
// calls on the same Writer are not safe. On an I/O failure the sink may be
// left in an indeterminate state: Writer does not roll back a partial
// write, and the Writer should be discarded.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteTagAndData writes a definite-length TLV: id's identifier octets,
// followed by the minimal DER length encoding of len(contents), followed by
// contents itself. It returns the total number of bytes written.
func (w *Writer) WriteTagAndData(id Identifier, contents []byte) (int, error) {
	header := id.Append(make([]byte, 0, id.Len()+lengthLen(len(contents))))
	header = appendLength(header, len(contents))

	n, err := w.w.Write(header)
	if err != nil {
		return n, &IOError{err}
	}
	n2, err := w.w.Write(contents)
	n += n2
	if err != nil {
		return n, &IOError{err}
	}
	return n, nil
}

// ContentWriter is the restricted writer handle passed to the callback of
// [Writer.WriteIndefiniteTag]. It accumulates the content bytes of an
// indefinite-length value. A ContentWriter must not be retained or used
// after its enclosing WriteIndefiniteTag call returns.
type ContentWriter struct {
	w io.Writer
	n int
}

// Write implements [io.Writer], forwarding content bytes to the enclosing
// Writer's sink.
func (cw *ContentWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}

// WriteIndefiniteTag writes id's identifier octets, the indefinite-length
// marker (0x80), invokes fill with a [ContentWriter] to produce the content,
// and then writes the two-byte end-of-contents marker. It returns the total
// number of bytes written, including the content fill wrote.
//
// This is a BER feature, not DER-conformant, and is offered only for
// interoperability with encoders that require it.
func (w *Writer) WriteIndefiniteTag(id Identifier, fill func(*ContentWriter) error) (int, error) {
	header := id.Append(make([]byte, 0, id.Len()+1))
	header = append(header, 0x80)

	n, err := w.w.Write(header)
	if err != nil {
		return n, &IOError{err}
	}

	cw := &ContentWriter{w: w.w}
	if err := fill(cw); err != nil {
		return n + cw.n, err
	}
	n += cw.n

	n2, err := w.w.Write([]byte{0x00, 0x00})
	n += n2
	if err != nil {
		return n, &IOError{err}
	}
	return n, nil
}

// booleanIdentifier is the Identifier of the ASN.1 BOOLEAN type.
var booleanIdentifier = NewIdentifier(asn1.ClassUniversal, false, uint64(asn1.Boolean))

// WriteBoolean writes the DER encoding of an ASN.1 BOOLEAN: a primitive
// Universal BOOLEAN TLV with a single content byte, 0x00 for false and 0xFF
// (not merely any nonzero byte) for true.
func (w *Writer) WriteBoolean(v bool) (int, error) {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	return w.WriteTagAndData(booleanIdentifier, []byte{b})
}
