// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

// formatGenerator and formatMask implement the BCH(15,5) code
// ISO/IEC 18004 §7.9 uses to protect the 5-bit format information
// (error correction level + mask index).
const (
	formatGenerator = 0x537
	formatMask      = 0x5412
)

// versionGenerator implements the BCH(18,6) code §7.10 uses to protect
// the 6-bit version number, drawn only for version 7 and above.
const versionGenerator = 0x1f25

// module reads a module without regard to whether it is reserved.
func (c *QrCode) module(x, y int) bool { return c.modules[y*c.sz+x] }

// setFunction sets a module's colour and marks it reserved: function
// and format/version modules are never touched by masking.
func (c *QrCode) setFunction(x, y int, dark bool) {
	c.modules[y*c.sz+x] = dark
	c.reserved[y*c.sz+x] = true
}

// drawFunctionPatterns lays down every module fixed by the symbol's
// structure: timing patterns, the three finder patterns, alignment
// patterns, the dark module, placeholder format information
// (overwritten with real values once the mask is chosen) and, for
// version 7 and above, the final version information.
func (c *QrCode) drawFunctionPatterns() error {
	sz := c.sz
	for i := 0; i < sz; i++ {
		c.setFunction(6, i, i%2 == 0)
		c.setFunction(i, 6, i%2 == 0)
	}

	c.drawFinderPattern(3, 3)
	c.drawFinderPattern(sz-4, 3)
	c.drawFinderPattern(3, sz-4)

	pos := alignmentPositions(c.version)
	for i, px := range pos {
		for j, py := range pos {
			// Skip the three corners, which the finder patterns already occupy.
			if (i == 0 && j == 0) || (i == 0 && j == len(pos)-1) || (i == len(pos)-1 && j == 0) {
				continue
			}
			c.drawAlignmentPattern(px, py)
		}
	}

	c.setFunction(8, sz-8, true) // dark module

	if err := c.drawFormatBits(0); err != nil { // placeholder, overwritten later
		return err
	}
	if c.version >= 7 {
		c.drawVersion()
	}
	return nil
}

// drawFinderPattern draws the 7x7 finder pattern (plus its separator
// ring, clipped to the symbol's edge) centered at (x, y).
func (c *QrCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy)) // Chebyshev distance to center
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < c.sz && 0 <= yy && yy < c.sz {
				c.setFunction(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws the 5x5 alignment pattern centered at (x, y).
func (c *QrCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			c.setFunction(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawFormatBits computes and draws the two redundant copies of the
// 15-bit format information for the given mask index at c's error
// correction level.
func (c *QrCode) drawFormatBits(mask int) error {
	fb, err := c.level.formatBits()
	if err != nil {
		return err
	}
	data := uint32(fb<<3 | mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * formatGenerator)
	}
	bits := (data<<10 | rem) ^ formatMask

	getBit := func(i uint) bool { return bits>>i&1 != 0 }

	for i := uint(0); i <= 5; i++ {
		c.setFunction(8, int(i), getBit(i))
	}
	c.setFunction(8, 7, getBit(6))
	c.setFunction(8, 8, getBit(7))
	c.setFunction(7, 8, getBit(8))
	for i := uint(9); i < 15; i++ {
		c.setFunction(14-int(i), 8, getBit(i))
	}

	for i := uint(0); i < 8; i++ {
		c.setFunction(c.sz-1-int(i), 8, getBit(i))
	}
	for i := uint(8); i < 15; i++ {
		c.setFunction(8, c.sz-15+int(i), getBit(i))
	}
	return nil
}

// drawVersion computes and draws the two redundant copies of the
// 18-bit version information, for version 7 and above only.
func (c *QrCode) drawVersion() {
	rem := uint32(c.version)
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * versionGenerator)
	}
	bits := uint32(c.version)<<12 | rem

	for i := 0; i < 18; i++ {
		bit := bits>>uint(i)&1 != 0
		a := c.sz - 11 + i%3
		b := i / 3
		c.setFunction(a, b, bit)
		c.setFunction(b, a, bit)
	}
}

// drawCodewords places data, a byte slice of interleaved data and ECC
// codewords, into every non-reserved module in the standard
// bottom-to-top, right-to-left zig-zag column pairs, skipping the
// vertical timing pattern column.
func (c *QrCode) drawCodewords(data []byte) {
	sz := c.sz
	i := 0 // bit index into data
	for right := sz - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < sz; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				y := vert
				if upward {
					y = sz - 1 - vert
				}
				if c.reserved[y*sz+x] {
					continue
				}
				var bit bool
				if i < len(data)*8 {
					bit = data[i>>3]>>(7-uint(i&7))&1 != 0
				}
				c.modules[y*sz+x] = bit
				i++
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
