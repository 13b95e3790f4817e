// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import "strings"

// alphanumericCharset is the 45-symbol alphabet ISO/IEC 18004 defines
// for Alphanumeric mode segments, in encoding order.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// A Segment is one encoded run of input: a mode, the character count
// of the run (as the standard defines "character" for that mode), and
// its payload bits.
type Segment struct {
	Mode      Mode
	CharCount int
	Data      BitBuffer
}

// NumericSegment encodes s, which must consist only of the ASCII
// digits 0-9, as a Numeric-mode segment.
func NumericSegment(s string) (Segment, error) {
	var data BitBuffer
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Segment{}, &DomainError{"text", "not all digits, cannot use numeric mode"}
		}
	}
	for i := 0; i < len(s); i += 3 {
		n := min(3, len(s)-i)
		var v uint32
		for _, c := range s[i : i+n] {
			v = v*10 + uint32(c-'0')
		}
		width := [4]int{0, 4, 7, 10}[n]
		data.appendUnchecked(v, width)
	}
	return Segment{Numeric, len(s), data}, nil
}

// alphanumericValue returns the 0-44 code point of c in the
// Alphanumeric charset, or -1 if c is not a member.
func alphanumericValue(c byte) int {
	return strings.IndexByte(alphanumericCharset, c)
}

// AlphanumericSegment encodes s, which must consist only of characters
// from the QR Alphanumeric charset, as an Alphanumeric-mode segment.
func AlphanumericSegment(s string) (Segment, error) {
	var data BitBuffer
	for i := 0; i < len(s); i += 2 {
		a := alphanumericValue(s[i])
		if a < 0 {
			return Segment{}, &DomainError{"text", "contains characters outside the alphanumeric charset"}
		}
		if i+1 < len(s) {
			b := alphanumericValue(s[i+1])
			if b < 0 {
				return Segment{}, &DomainError{"text", "contains characters outside the alphanumeric charset"}
			}
			data.appendUnchecked(uint32(a*45+b), 11)
		} else {
			data.appendUnchecked(uint32(a), 6)
		}
	}
	return Segment{Alphanumeric, len(s), data}, nil
}

// ByteSegment encodes data as a Byte-mode segment, one byte to eight
// bits, unconditionally: any byte value is valid.
func ByteSegment(data []byte) Segment {
	var b BitBuffer
	b.Grow(len(data))
	for _, v := range data {
		b.appendUnchecked(uint32(v), 8)
	}
	return Segment{Byte, len(data), b}
}

// ECISegment encodes designator, an Extended Channel Interpretation
// assignment number, as a zero-character-count ECI segment.
// designator must be non-negative and less than 1,000,000.
func ECISegment(designator int) (Segment, error) {
	if designator < 0 || designator >= 1_000_000 {
		return Segment{}, &DomainError{"designator", "ECI designator must be in [0, 1000000)"}
	}
	var data BitBuffer
	switch {
	case designator < 1<<7:
		data.appendUnchecked(uint32(designator), 8)
	case designator < 1<<14:
		data.appendUnchecked(2, 2)
		data.appendUnchecked(uint32(designator), 14)
	default:
		data.appendUnchecked(6, 3)
		data.appendUnchecked(uint32(designator), 21)
	}
	return Segment{ECI, 0, data}, nil
}

// isNumeric reports whether every byte of s is an ASCII digit.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isAlphanumeric reports whether every byte of s is a member of the
// Alphanumeric charset.
func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if alphanumericValue(s[i]) < 0 {
			return false
		}
	}
	return true
}

// segmentsForText picks a single segment for text using the reference
// single-segment rule: pure digits use Numeric, an all-alphanumeric
// string uses Alphanumeric, anything else falls back to Byte mode over
// the string's UTF-8 bytes.  This package does not implement optimal
// multi-segment splitting (spec.md §4.2 permits either).
// SegmentsForText is the exported form of segmentsForText, for callers
// that need the chosen segments before calling EncodeSegments
// themselves (for example, to pin a specific mask or version range).
func SegmentsForText(text string) ([]Segment, error) { return segmentsForText(text) }

func segmentsForText(text string) ([]Segment, error) {
	if text == "" {
		return nil, &DomainError{"text", "must not be empty"}
	}
	var seg Segment
	var err error
	switch {
	case isNumeric(text):
		seg, err = NumericSegment(text)
	case isAlphanumeric(text):
		seg, err = AlphanumericSegment(text)
	default:
		seg = ByteSegment([]byte(text))
	}
	if err != nil {
		return nil, err
	}
	return []Segment{seg}, nil
}

// notEncodable is the sentinel totalBits returns, alongside a nil
// error, when segments cannot be encoded at version at all (as
// opposed to merely not fitting the capacity of that version): the
// caller treats it exactly like an over-capacity total and moves on
// to the next version.
const notEncodable = -1

// totalBits returns the total encoded length, in bits, of segments at
// the given version: Σ (4 + charCountFieldWidth + payload length). It
// returns notEncodable, nil if any segment's character count does not
// fit its field width at this version; the version selector treats
// that as "does not fit" and tries the next version, matching the
// -1 sentinel of the original GET_TOTAL_BITS.
func totalBits(segments []Segment, version int) (int, error) {
	total := 0
	for _, seg := range segments {
		width := seg.Mode.charCountFieldWidth(version)
		if width < 31 && seg.CharCount >= 1<<width {
			return notEncodable, nil
		}
		total += 4 + width + seg.Data.Len()
	}
	return total, nil
}

// totalBitsLenient is totalBits without the character-count field width
// check, for reporting a required-bits figure in a *DataTooLongError
// when segments do not fit even the widest field at maxVersion.
func totalBitsLenient(segments []Segment, version int) int {
	total := 0
	for _, seg := range segments {
		total += 4 + seg.Mode.charCountFieldWidth(version) + seg.Data.Len()
	}
	return total
}
