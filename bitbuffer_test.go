// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import "testing"

func TestBitBufferAppend(t *testing.T) {
	var b BitBuffer
	if err := b.Append(0x1, 4); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := b.Append(0x2, 4); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got, want := b.Len(), 8; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := b.Bytes(), []byte{0x12}; got[0] != want[0] {
		t.Fatalf("Bytes() = %#v, want %#v", got, want)
	}
}

func TestBitBufferAppendRejectsOverflow(t *testing.T) {
	var b BitBuffer
	if err := b.Append(0x10, 4); err == nil {
		t.Fatal("Append(0x10, 4) succeeded, want error")
	}
	if err := b.Append(1, 32); err == nil {
		t.Fatal("Append(1, 32) succeeded, want error")
	}
}

func TestBitBufferAppendBuffer(t *testing.T) {
	var a, b BitBuffer
	a.appendUnchecked(0x5, 4)
	b.appendUnchecked(0xA, 4)
	a.AppendBuffer(&b)
	if got, want := a.Len(), 8; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := a.Bytes()[0], byte(0x5A); got != want {
		t.Fatalf("Bytes()[0] = %#x, want %#x", got, want)
	}
}

func TestBitBufferPadWithZeros(t *testing.T) {
	var b BitBuffer
	b.appendUnchecked(0xF, 4)
	n := b.PadWithZeros(4, 6)
	if n != 2 {
		t.Fatalf("PadWithZeros returned %d, want 2", n)
	}
	if got, want := b.Len(), 6; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestBitBufferAlignToByte(t *testing.T) {
	var b BitBuffer
	b.appendUnchecked(0x1, 3)
	b.AlignToByte()
	if got, want := b.Len(), 8; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	_ = b.Bytes() // must not panic
}

func TestBitBufferBytesPanicsOnFractionalByte(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Bytes() did not panic on a fractional-byte buffer")
		}
	}()
	var b BitBuffer
	b.appendUnchecked(1, 3)
	b.Bytes()
}
