// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "io"

// Iterator walks the TLV units of a Reader using the bufio.Scanner idiom:
// call Next in a loop, consult Identifier/Value while it returns true, then
// check Err once the loop ends.
//
// Once Next has returned false, because the Reader reached the end or
// because a malformed unit was encountered, it keeps returning false on
// every subsequent call, regardless of how many times it is polled. Err
// reports the error that ended iteration, or nil if iteration simply ran out
// of input.
type Iterator struct {
	r     *Reader
	id    Identifier
	value []byte
	err   error
	done  bool
}

// Iter returns an Iterator over the remaining TLV units of r.
func (r *Reader) Iter() *Iterator {
	return &Iterator{r: r}
}

// Next advances the iterator to the next TLV unit and reports whether one
// was found.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	id, value, err := it.r.Next()
	if err != nil {
		it.done = true
		if err != io.EOF {
			it.err = err
		}
		return false
	}
	it.id, it.value = id, value
	return true
}

// Identifier returns the Identifier of the current TLV unit.
func (it *Iterator) Identifier() Identifier { return it.id }

// Value returns the content slice of the current TLV unit.
func (it *Iterator) Value() []byte { return it.value }

// Err returns the error that ended iteration, or nil if iteration ended
// because the underlying Reader reached the end of its buffer.
func (it *Iterator) Err() error { return it.err }
