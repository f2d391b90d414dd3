package oid

import (
	"errors"
	"fmt"
	"testing"
)

// The well-known RSA encryption OID 1.2.840.113549.1.1.1 decodes to its
// documented component sequence and re-encodes byte for byte.
func TestDecode_rsaEncryption(t *testing.T) {
	encoded := []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}
	want := ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("Decode() = %v, want %v", got, want)
	}

	reencoded, err := got.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if string(reencoded) != string(encoded) {
		t.Fatalf("Encode() = % x, want % x", reencoded, encoded)
	}
}

func TestObjectIdentifier_String(t *testing.T) {
	oid := ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	want := "1.2.840.113549.1.1.1"
	if got := oid.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func ExampleObjectIdentifier_String() {
	oid := ObjectIdentifier{2, 5, 4, 3}
	fmt.Println(oid.String())
	// Output: 2.5.4.3
}

func TestDecode_roundTrip(t *testing.T) {
	tests := []ObjectIdentifier{
		{0, 0},
		{0, 39},
		{1, 0},
		{1, 39},
		{2, 0},
		{2, 5, 4, 3},
		{2, 100, 3},
		{1, 2, 840, 113549, 1, 1, 1},
	}
	for _, want := range tests {
		encoded, err := want.Encode()
		if err != nil {
			t.Fatalf("%v.Encode() error: %v", want, err)
		}
		got, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%v.Encode()) error: %v", want, err)
		}
		if !got.Equal(want) {
			t.Errorf("Decode(%v.Encode()) = %v, want %v", want, got, want)
		}
		if n := want.EncodedLength(); n != len(encoded) {
			t.Errorf("%v.EncodedLength() = %d, want %d", want, n, len(encoded))
		}
	}
}

func TestDecode_truncated(t *testing.T) {
	tests := map[string][]byte{
		"empty":                  {},
		"continuation with no terminator": {0x86, 0x48, 0x86},
	}
	for name, buf := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(buf)
			if !errors.Is(err, ErrUnexpectedEndOfData) {
				t.Fatalf("Decode(% x) error = %v, want ErrUnexpectedEndOfData", buf, err)
			}
		})
	}
}

// A component VLQ whose accumulation overflows 64 bits is rejected rather
// than wrapping.
func TestDecode_componentOverflow(t *testing.T) {
	buf := []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}
	_, err := Decode(buf)
	if !errors.Is(err, ErrComponentOverflow) {
		t.Fatalf("Decode() error = %v, want ErrComponentOverflow", err)
	}
}

func TestEncode_invalidComponents(t *testing.T) {
	tests := map[string]ObjectIdentifier{
		"too short":        {1},
		"first component too large": {3, 0},
		"second component out of range for 0": {0, 40},
		"second component out of range for 1": {1, 40},
	}
	for name, oid := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := oid.Encode(); !errors.Is(err, ErrInvalidComponents) {
				t.Fatalf("%v.Encode() error = %v, want ErrInvalidComponents", oid, err)
			}
			if n := oid.EncodedLength(); n != 0 {
				t.Fatalf("%v.EncodedLength() = %d, want 0", oid, n)
			}
		})
	}
}

func TestObjectIdentifier_Equal(t *testing.T) {
	a := ObjectIdentifier{1, 2, 3}
	b := ObjectIdentifier{1, 2, 3}
	c := ObjectIdentifier{1, 2, 4}
	if !a.Equal(b) {
		t.Errorf("Equal(%v, %v) = false, want true", a, b)
	}
	if a.Equal(c) {
		t.Errorf("Equal(%v, %v) = true, want false", a, c)
	}
}
