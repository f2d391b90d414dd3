// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements the tag-length-value codec of the ASN.1 Basic
// Encoding Rules, with Distinguished Encoding Rules conformance for writing.
// The rules are defined in [Rec. ITU-T X.690].
//
// [Reader] parses a borrowed byte slice as a sequence of TLV units without
// copying: each call to [Reader.Next] returns an [Identifier] and a subslice
// of the input holding that unit's content. For a constructed value, the
// caller re-parses the returned slice with a fresh Reader. Nesting is a
// caller concern, not something Reader does on its own. [Writer] is the
// symmetric encoder, emitting DER-conformant definite-length TLVs and,
// opt-in, BER indefinite-length TLVs.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package ber

import (
	"bytes"
	"errors"
	"io"

	"go.kepler.dev/asn1"
	"go.kepler.dev/asn1/internal/vlq"
)

// Identifier is the (class, constructed, tag number) triple carried by a TLV
// identifier octet (or octets, in the multi-byte tag form). The tag number
// may be up to 64 bits wide; for the Universal class a consumer may choose to
// validate it against [asn1.UniversalTag], but Identifier itself does not;
// unrecognized universal tag numbers remain representable.
type Identifier struct {
	class       asn1.Class
	constructed bool
	tag         uint64
}

// NewIdentifier constructs an Identifier from its three components.
func NewIdentifier(class asn1.Class, constructed bool, tag uint64) Identifier {
	return Identifier{class: class, constructed: constructed, tag: tag}
}

// Class returns the tag class of id.
func (id Identifier) Class() asn1.Class { return id.class }

// Constructed reports whether id uses the constructed encoding, i.e. whether
// its value is itself a sequence of TLVs rather than a primitive byte string.
func (id Identifier) Constructed() bool { return id.constructed }

// Tag returns the tag number of id, irrespective of class.
func (id Identifier) Tag() uint64 { return id.tag }

// String returns a notation similar to ASN.1 module syntax, e.g. "[UNIVERSAL
// 16]/c" for a constructed SEQUENCE.
func (id Identifier) String() string {
	s := "[" + id.class.String() + " "
	s += uitoa(id.tag) + "]"
	if id.constructed {
		s += "/c"
	} else {
		s += "/p"
	}
	return s
}

// uitoa avoids pulling in strconv just for this String method's hot path;
// Identifier.String is only used for diagnostics, but keep it alloc-light.
func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Len returns the number of bytes [Identifier.Append] would write for id:
// the exact predicted length of its identifier-octet encoding.
func (id Identifier) Len() int {
	if id.tag < 31 {
		return 1
	}
	return 1 + vlq.Length(id.tag)
}

// Append appends the BER encoding of id's identifier octet(s) to dst and
// returns the extended slice. Append never fails: every Identifier value is
// representable.
func (id Identifier) Append(dst []byte) []byte {
	b := byte(id.class) << 6
	if id.constructed {
		b |= 0x20
	}
	if id.tag < 31 {
		b |= byte(id.tag)
		return append(dst, b)
	}
	b |= 0x1f
	dst = append(dst, b)
	var buf bytes.Buffer
	buf.Grow(vlq.Length(id.tag))
	_, _ = vlq.Write(&buf, id.tag)
	return append(dst, buf.Bytes()...)
}

// Encode returns the BER encoding of id's identifier octet(s) as a new slice.
func (id Identifier) Encode() []byte { return id.Append(nil) }

// DecodeIdentifier reads one BER identifier from the front of buf. It returns
// the decoded Identifier together with the number of bytes consumed.
//
// DecodeIdentifier returns [ErrUnexpectedEndOfData] if buf is exhausted
// before a complete identifier has been read, and [ErrInvalidTag] if a
// multi-byte tag number would overflow 64 bits.
func DecodeIdentifier(buf []byte) (Identifier, int, error) {
	if len(buf) == 0 {
		return Identifier{}, 0, ErrUnexpectedEndOfData
	}
	b := buf[0]
	class := asn1.Class(b >> 6)
	constructed := b&0x20 != 0
	low5 := b & 0x1f

	if low5 != 0x1f {
		return Identifier{class: class, constructed: constructed, tag: uint64(low5)}, 1, nil
	}

	sr := &sliceByteReader{b: buf[1:]}
	n, err := vlq.Read[uint64](sr)
	consumed := 1 + sr.i
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Identifier{}, consumed, ErrUnexpectedEndOfData
		}
		// vlq.ErrOverflow: the tag number does not fit into 64 bits.
		return Identifier{}, consumed, ErrInvalidTag
	}
	return Identifier{class: class, constructed: constructed, tag: n}, consumed, nil
}
