// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

// UniversalTag enumerates the tag numbers assigned to the UNIVERSAL class by
// table 1 of [Rec. ITU-T X.680], section 8. Tag numbers 14 and 15 are
// reserved by the standard and intentionally have no corresponding constant;
// 31 is the BER "use long form" sentinel and is likewise not a UniversalTag
// value. An Identifier is not required to carry a recognized UniversalTag;
// unrecognized universal tag numbers remain representable for forward
// compatibility, and validating against this enumeration is left to callers
// that care.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
//
//go:generate stringer -type=UniversalTag
type UniversalTag uint64

const (
	EndOfContent     UniversalTag = 0
	Boolean          UniversalTag = 1
	Integer          UniversalTag = 2
	BitString        UniversalTag = 3
	OctetString      UniversalTag = 4
	Null             UniversalTag = 5
	ObjectIdentifier UniversalTag = 6
	ObjectDescriptor UniversalTag = 7
	External         UniversalTag = 8
	Real             UniversalTag = 9
	Enumerated       UniversalTag = 10
	EmbeddedPdv      UniversalTag = 11
	Utf8String       UniversalTag = 12
	RelativeOid      UniversalTag = 13
	// 14 and 15 are reserved by Rec. ITU-T X.680 and have no constant.
	Sequence        UniversalTag = 16
	Set             UniversalTag = 17
	NumericString   UniversalTag = 18
	PrintableString UniversalTag = 19
	T61String       UniversalTag = 20
	VideotexString  UniversalTag = 21
	Ia5String       UniversalTag = 22
	UtcTime         UniversalTag = 23
	GeneralizedTime UniversalTag = 24
	GraphicString   UniversalTag = 25
	VisibleString   UniversalTag = 26
	GeneralString   UniversalTag = 27
	UniversalString UniversalTag = 28
	CharacterString UniversalTag = 29
	BmpString       UniversalTag = 30
)
