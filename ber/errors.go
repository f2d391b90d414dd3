// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "errors"

var (
	// ErrUnexpectedEndOfData is returned when the input buffer is exhausted
	// in the middle of a TLV unit: an identifier, a length, or a value
	// (including indefinite-length content with no end-of-contents marker).
	ErrUnexpectedEndOfData = errors.New("ber: unexpected end of data")

	// ErrInvalidTag is returned when a multi-byte tag number would overflow
	// a 64-bit accumulator.
	ErrInvalidTag = errors.New("ber: invalid tag")

	// ErrLengthOverflow is returned when a long-form length would overflow
	// the platform int range.
	ErrLengthOverflow = errors.New("ber: length overflow")
)

// IOError wraps a failure returned by a [Writer]'s underlying sink. The
// Writer does not attempt to roll back a partial write on such a failure;
// per the BER/DER Writer contract, the sink is left in whatever state the
// failed write left it in, and the Writer should be discarded.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "ber: write error: " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }
