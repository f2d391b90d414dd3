// Package oid implements the value-level encoding of the ASN.1 OBJECT
// IDENTIFIER type as specified by [Rec. ITU-T X.690] §8.19: a sequence of
// arbitrary-precision component numbers, using the base-128 continuation
// encoding of package vlq, with the first two components packed into a
// single leading VLQ.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package oid

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"go.kepler.dev/asn1/internal/vlq"
)

var (
	// ErrUnexpectedEndOfData is returned when the input is empty, or ends
	// while a component's continuation byte is still expected.
	ErrUnexpectedEndOfData = errors.New("oid: unexpected end of data")

	// ErrComponentOverflow is returned when a component number would
	// overflow a 64-bit accumulator.
	ErrComponentOverflow = errors.New("oid: component overflow")

	// ErrInvalidComponents is returned by Append/Encode when the component
	// sequence does not satisfy the ObjectIdentifier invariants: at least
	// two components, component[0] in {0, 1, 2}, and if component[0] is 0
	// or 1, component[1] < 40.
	ErrInvalidComponents = errors.New("oid: invalid component sequence")
)

// An ObjectIdentifier represents an ASN.1 OBJECT IDENTIFIER: an ordered
// sequence of unsigned component numbers of length at least two, where
// component[0] is one of {0, 1, 2} and, when component[0] is 0 or 1,
// component[1] is less than 40.
//
// Decode relaxes the second part of this invariant in one specific way,
// matching the standard's own packing scheme: a leading VLQ value of 80 or
// more (one or more octets) decodes to component[0] = 2 and component[1] =
// (value - 80), which may exceed 40. This is acceptable and standard, not an
// error.
type ObjectIdentifier []uint64

// Equal reports whether oid and other represent the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return slices.Equal(oid, other)
}

// String returns the dot-separated notation of oid, e.g. "1.2.840.113549".
func (oid ObjectIdentifier) String() string {
	var s strings.Builder
	s.Grow(32)
	buf := make([]byte, 0, 20)
	for i, v := range oid {
		if i > 0 {
			s.WriteByte('.')
		}
		s.Write(strconv.AppendUint(buf, v, 10))
	}
	return s.String()
}

// Components returns the component numbers of oid.
func (oid ObjectIdentifier) Components() []uint64 { return oid }

// Decode parses an ObjectIdentifier from its BER content octets (the value
// of a UNIVERSAL 6 OBJECT IDENTIFIER TLV, not including its tag and length).
//
// Decode returns [ErrUnexpectedEndOfData] if b is empty or a component's
// continuation octet is missing, and [ErrComponentOverflow] if a component
// number would overflow 64 bits.
func Decode(b []byte) (ObjectIdentifier, error) {
	if len(b) == 0 {
		return nil, ErrUnexpectedEndOfData
	}
	sr := &sliceByteReader{b: b}

	first, err := vlq.Read[uint64](sr)
	if err != nil {
		return nil, translate(err)
	}

	var c0, c1 uint64
	if first < 80 {
		c0, c1 = first/40, first%40
	} else {
		c0, c1 = 2, first-80
	}

	// Worst case every remaining octet is its own single-byte component.
	components := make(ObjectIdentifier, 2, 2+(len(b)-sr.i))
	components[0], components[1] = c0, c1

	for sr.i < len(sr.b) {
		v, err := vlq.Read[uint64](sr)
		if err != nil {
			return nil, translate(err)
		}
		components = append(components, v)
	}
	return components, nil
}

// translate maps an internal/vlq error onto this package's error taxonomy.
func translate(err error) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return ErrUnexpectedEndOfData
	case errors.Is(err, vlq.ErrOverflow):
		return ErrComponentOverflow
	default:
		return err
	}
}

// valid reports whether oid satisfies the ObjectIdentifier invariants
// required to encode it.
func (oid ObjectIdentifier) valid() bool {
	if len(oid) < 2 || oid[0] > 2 {
		return false
	}
	if oid[0] < 2 && oid[1] >= 40 {
		return false
	}
	return true
}

// Append appends the BER content-octet encoding of oid to dst and returns
// the extended slice. It returns [ErrInvalidComponents] if oid does not
// satisfy the ObjectIdentifier invariants.
func (oid ObjectIdentifier) Append(dst []byte) ([]byte, error) {
	if !oid.valid() {
		return dst, ErrInvalidComponents
	}
	var buf bytes.Buffer
	buf.Grow(vlq.Length(oid[0]*40 + oid[1]))
	_, _ = vlq.Write(&buf, oid[0]*40+oid[1])
	dst = append(dst, buf.Bytes()...)

	for _, c := range oid[2:] {
		buf.Reset()
		_, _ = vlq.Write(&buf, c)
		dst = append(dst, buf.Bytes()...)
	}
	return dst, nil
}

// Encode returns the BER content-octet encoding of oid as a new slice.
func (oid ObjectIdentifier) Encode() ([]byte, error) {
	return oid.Append(nil)
}

// EncodedLength returns the number of bytes Encode would produce for oid, or
// 0 if oid does not satisfy the ObjectIdentifier invariants.
func (oid ObjectIdentifier) EncodedLength() int {
	if !oid.valid() {
		return 0
	}
	n := vlq.Length(oid[0]*40 + oid[1])
	for _, c := range oid[2:] {
		n += vlq.Length(c)
	}
	return n
}
