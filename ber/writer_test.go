// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"testing"

	"go.kepler.dev/asn1"
)

// DER requires 0xFF, not merely any nonzero byte, for BOOLEAN true.
func TestWriter_WriteBoolean(t *testing.T) {
	tests := map[bool][]byte{
		true:  {0x01, 0x01, 0xff},
		false: {0x01, 0x01, 0x00},
	}
	for v, want := range tests {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		n, err := w.WriteBoolean(v)
		if err != nil {
			t.Fatalf("WriteBoolean(%v) error: %v", v, err)
		}
		if n != len(want) || buf.String() != string(want) {
			t.Fatalf("WriteBoolean(%v) wrote % x (n=%d), want % x", v, buf.Bytes(), n, want)
		}
	}
}

// The Writer and Reader must round-trip a definite-length TLV.
func TestWriter_WriteTagAndData_roundTrip(t *testing.T) {
	id := NewIdentifier(asn1.ClassUniversal, false, uint64(asn1.OctetString))
	content := []byte("hello, world")

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.WriteTagAndData(id, content); err != nil {
		t.Fatalf("WriteTagAndData() error: %v", err)
	}

	r := NewReader(buf.Bytes())
	gotID, gotValue, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if gotID != id {
		t.Fatalf("Next() identifier = %v, want %v", gotID, id)
	}
	if string(gotValue) != string(content) {
		t.Fatalf("Next() value = %q, want %q", gotValue, content)
	}
}

// The indefinite-length Writer/Reader pair must round-trip as well, despite
// not being DER-conformant.
func TestWriter_WriteIndefiniteTag_roundTrip(t *testing.T) {
	id := NewIdentifier(asn1.ClassUniversal, true, uint64(asn1.Sequence))
	inner := NewIdentifier(asn1.ClassUniversal, false, uint64(asn1.Boolean))

	var buf bytes.Buffer
	w := NewWriter(&buf)
	_, err := w.WriteIndefiniteTag(id, func(cw *ContentWriter) error {
		innerWriter := &Writer{w: cw}
		_, err := innerWriter.WriteTagAndData(inner, []byte{0xff})
		return err
	})
	if err != nil {
		t.Fatalf("WriteIndefiniteTag() error: %v", err)
	}

	r := NewReader(buf.Bytes())
	gotID, content, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if gotID != id {
		t.Fatalf("Next() identifier = %v, want %v", gotID, id)
	}

	innerReader := NewReader(content)
	innerID, innerValue, err := innerReader.Next()
	if err != nil {
		t.Fatalf("inner Next() error: %v", err)
	}
	if innerID != inner || string(innerValue) != "\xff" {
		t.Fatalf("inner TLV = %v %x, want %v ff", innerID, innerValue, inner)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriter_WriteTagAndData_sinkError(t *testing.T) {
	sinkErr := errors.New("disk full")
	w := NewWriter(failingWriter{sinkErr})
	_, err := w.WriteTagAndData(NewIdentifier(asn1.ClassUniversal, false, 1), []byte{0x00})

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("WriteTagAndData() error = %v, want *IOError", err)
	}
	if !errors.Is(err, sinkErr) {
		t.Fatalf("errors.Is(err, sinkErr) = false, want true")
	}
}
