// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qrcode implements the ISO/IEC 18004 QR Code encoder: segment
// encoding, Reed–Solomon error correction, module placement, masking
// and the resulting read-only symbol.  Rendering the symbol to an
// image or a terminal is left to the render package; this package
// never does I/O.
package qrcode

// A QrCode is a fully encoded, immutable QR symbol.  Use EncodeText,
// EncodeBinary or EncodeSegments to build one; read it back with
// Size, Version, ErrorLevel, Mask and Module.
type QrCode struct {
	version  int
	level    Level
	mask     int
	sz       int
	modules  []bool // sz*sz, row-major; true means dark
	reserved []bool // sz*sz, row-major; true means function/format module, never masked
}

// Size returns the side length, in modules, of c.
func (c *QrCode) Size() int { return c.sz }

// Version returns c's QR version, 1 through 40.
func (c *QrCode) Version() int { return c.version }

// ErrorLevel returns c's error correction level.
func (c *QrCode) ErrorLevel() Level { return c.level }

// Mask returns the index, 0 through 7, of the data mask applied to c.
func (c *QrCode) Mask() int { return c.mask }

// Module reports whether the module at (x, y) is dark.  It returns
// false for any (x, y) outside [0, Size()).
func (c *QrCode) Module(x, y int) bool {
	if x < 0 || x >= c.sz || y < 0 || y >= c.sz {
		return false
	}
	return c.modules[y*c.sz+x]
}

// EncodeText encodes text at error correction level ecl using the
// single-segment mode selection rule (segmentsForText), at the lowest
// version from 1 to 40 that fits, with the requested level boosted
// upward when a higher level still fits.
func EncodeText(text string, ecl Level) (*QrCode, error) {
	segs, err := segmentsForText(text)
	if err != nil {
		return nil, err
	}
	return EncodeSegments(segs, ecl, MinVersion, MaxVersion, -1, true)
}

// EncodeBinary encodes data as a single Byte-mode segment, at error
// correction level ecl, with the same version and boost behaviour as
// EncodeText.
func EncodeBinary(data []byte, ecl Level) (*QrCode, error) {
	return EncodeSegments([]Segment{ByteSegment(data)}, ecl, MinVersion, MaxVersion, -1, true)
}

// EncodeSegments encodes segments at the lowest version in
// [minVersion, maxVersion] that has room for them at level ecl. If
// boostEcl is true, the chosen level is then raised through M, Q and H
// in turn, keeping each increase only while the data still fits at the
// chosen version. mask selects a specific data mask in [0, 7], or -1 to
// have EncodeSegments choose the lowest-penalty mask itself.
func EncodeSegments(segments []Segment, ecl Level, minVersion, maxVersion, mask int, boostEcl bool) (*QrCode, error) {
	if minVersion < MinVersion || maxVersion > MaxVersion || minVersion > maxVersion {
		return nil, &DomainError{"minVersion,maxVersion", "must satisfy 1 <= minVersion <= maxVersion <= 40"}
	}
	if !ecl.valid() {
		return nil, &DomainError{"ecl", "must be one of L, M, Q, H"}
	}
	if mask < -1 || mask > 7 {
		return nil, &DomainError{"mask", "must be -1 or in [0, 7]"}
	}

	version := minVersion
	var usedBits int
	for {
		capBits, err := capacityCodewords(version, ecl)
		if err != nil {
			return nil, err
		}
		capBits *= 8
		usedBits, err = totalBits(segments, version)
		if err != nil {
			return nil, err
		}
		if usedBits != notEncodable && usedBits <= capBits {
			break
		}
		if version >= maxVersion {
			maxCap, _ := capacityCodewords(maxVersion, ecl)
			if usedBits == notEncodable {
				usedBits = totalBitsLenient(segments, maxVersion)
			}
			return nil, &DataTooLongError{RequiredBits: usedBits, MaxCapacityBits: maxCap * 8}
		}
		version++
	}

	if boostEcl {
		for _, newLevel := range []Level{M, Q, H} {
			capBits, err := capacityCodewords(version, newLevel)
			if err != nil {
				return nil, err
			}
			if usedBits <= capBits*8 {
				ecl = newLevel
			}
		}
	}

	data, err := assembleCodewords(segments, version, ecl)
	if err != nil {
		return nil, err
	}
	codewords, err := interleaveBlocks(data, version, ecl)
	if err != nil {
		return nil, err
	}

	c := newBlankSymbol(version, ecl)
	if err := c.drawFunctionPatterns(); err != nil {
		return nil, err
	}
	c.drawCodewords(codewords)
	if err := c.finalizeMask(mask); err != nil {
		return nil, err
	}
	c.reserved = nil // only needed during construction
	return c, nil
}

// newBlankSymbol allocates a symbol at (version, level) with no
// modules set.
func newBlankSymbol(version int, level Level) *QrCode {
	sz := size(version)
	return &QrCode{
		version:  version,
		level:    level,
		sz:       sz,
		modules:  make([]bool, sz*sz),
		reserved: make([]bool, sz*sz),
	}
}
