// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeTextAlphanumeric(t *testing.T) {
	c, err := EncodeText("HELLO WORLD", Q)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	if c.Version() != 1 {
		t.Errorf("Version() = %d, want 1", c.Version())
	}
	if c.Size() != 21 {
		t.Errorf("Size() = %d, want 21", c.Size())
	}
}

func TestEncodeTextNumeric(t *testing.T) {
	c, err := EncodeText("1234567890", L)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	if c.Version() != 1 {
		t.Errorf("Version() = %d, want 1", c.Version())
	}
}

func TestEncodeTextByteMode(t *testing.T) {
	url := "https://github.com/hassanbassam2005/QRCODE"
	c, err := EncodeText(url, H)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	if c.Version() != 5 {
		t.Errorf("Version() = %d, want 5", c.Version())
	}
	if c.Size() != 37 {
		t.Errorf("Size() = %d, want 37", c.Size())
	}
}

func TestEncodeTextRejectsEmpty(t *testing.T) {
	if _, err := EncodeText("", M); !errors.Is(err, ErrDomain) {
		t.Fatalf("EncodeText(\"\") = %v, want a *DomainError", err)
	}
}

func TestEncodeTextRejectsTooLong(t *testing.T) {
	huge := strings.Repeat("A", 10000)
	_, err := EncodeText(huge, H)
	var tooLong *DataTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("EncodeText(<10000 chars>, H) = %v, want a *DataTooLongError", err)
	}
}

func TestEncodeSegmentsRejectsBadVersionRange(t *testing.T) {
	seg, err := NumericSegment("1")
	if err != nil {
		t.Fatalf("NumericSegment: %v", err)
	}
	if _, err := EncodeSegments([]Segment{seg}, M, 10, 5, -1, true); !errors.Is(err, ErrDomain) {
		t.Fatalf("EncodeSegments with minVersion > maxVersion = %v, want a *DomainError", err)
	}
}

func TestEncodeSegmentsRejectsBadMask(t *testing.T) {
	seg, err := NumericSegment("1")
	if err != nil {
		t.Fatalf("NumericSegment: %v", err)
	}
	if _, err := EncodeSegments([]Segment{seg}, M, 1, 40, 8, true); !errors.Is(err, ErrDomain) {
		t.Fatalf("EncodeSegments with mask=8 = %v, want a *DomainError", err)
	}
}

func TestEncodeSegmentsExplicitMask(t *testing.T) {
	seg, err := AlphanumericSegment("HELLO")
	if err != nil {
		t.Fatalf("AlphanumericSegment: %v", err)
	}
	c, err := EncodeSegments([]Segment{seg}, Q, 1, 40, 5, false)
	if err != nil {
		t.Fatalf("EncodeSegments: %v", err)
	}
	if c.Mask() != 5 {
		t.Fatalf("Mask() = %d, want 5", c.Mask())
	}
}

func TestEncodeBinaryFinderCentersAreDark(t *testing.T) {
	c, err := EncodeBinary([]byte{0x00, 0xFF, 0x10}, M)
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	// Every finder pattern's center module must be dark.
	if !c.Module(3, 3) {
		t.Error("top-left finder center is not dark")
	}
	if !c.Module(c.Size()-4, 3) {
		t.Error("top-right finder center is not dark")
	}
	if !c.Module(3, c.Size()-4) {
		t.Error("bottom-left finder center is not dark")
	}
}

func TestEncodeBoostsErrorLevel(t *testing.T) {
	// A short numeric string leaves ample room at version 1; boosting
	// should raise the level above the requested L.
	c, err := EncodeText("123", L)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	if c.ErrorLevel() <= L {
		t.Errorf("ErrorLevel() = %v, want higher than L after boosting", c.ErrorLevel())
	}
}
