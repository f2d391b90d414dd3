// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "io"

// sliceByteReader adapts a byte slice to [io.ByteReader] so the generic
// base-128 decoder in internal/vlq can be reused for a one-shot,
// zero-allocation decode out of a borrowed buffer. It tracks how many bytes
// have been consumed so the caller can compute its own cursor advance.
type sliceByteReader struct {
	b []byte
	i int
}

// ReadByte implements [io.ByteReader].
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.i >= len(r.b) {
		return 0, io.EOF
	}
	c := r.b[r.i]
	r.i++
	return c, nil
}
