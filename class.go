// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1 defines the data types shared by the encoding-rule packages of
// this module: [Class], the four-way namespace an ASN.1 tag lives in, and
// [UniversalTag], the fixed catalogue of tag numbers defined by
// [Rec. ITU-T X.680] for the UNIVERSAL class. Encoding and decoding of
// tag-length-value data using these types is implemented by the ber package.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1

import "strconv"

// Class identifies the namespace an ASN.1 tag number is drawn from. Class is
// encoded in the top two bits of a BER identifier octet. See section 8.1.2 of
// [Rec. ITU-T X.690].
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
type Class uint8

// The four ASN.1 tag classes, in the order their bit pattern occupies the top
// two bits of a BER identifier octet.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// String returns a human-readable name for c, or a numeric fallback for any
// value outside the four defined classes (which cannot occur for a Class
// decoded from a two-bit field, but c may be constructed directly).
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT-SPECIFIC"
	case ClassPrivate:
		return "PRIVATE"
	default:
		return "Class(" + strconv.FormatUint(uint64(c), 10) + ")"
	}
}
