// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import "github.com/hassanbassam2005/QRCODE/gf256"

// assembleCodewords serialises segments into the padded data codeword
// vector for version/level: mode indicator, character count, payload
// per segment, then a terminator, byte alignment and alternating pad
// bytes up to capacity.  The result always has exactly
// capacityCodewords(version, level) bytes.
func assembleCodewords(segments []Segment, version int, level Level) ([]byte, error) {
	var bits BitBuffer
	for _, seg := range segments {
		ind, err := seg.Mode.indicator()
		if err != nil {
			return nil, err
		}
		bits.appendUnchecked(ind, 4)
		bits.appendUnchecked(uint32(seg.CharCount), seg.Mode.charCountFieldWidth(version))
		bits.AppendBuffer(&seg.Data)
	}

	capacityWords, err := capacityCodewords(version, level)
	if err != nil {
		return nil, err
	}
	capBits := capacityWords * 8
	if bits.Len() > capBits {
		return nil, &DataTooLongError{RequiredBits: bits.Len(), MaxCapacityBits: capBits}
	}

	bits.PadWithZeros(4, capBits) // terminator, capped at remaining capacity
	bits.AlignToByte()
	for padByte := byte(0xEC); bits.Len() < capBits; padByte ^= 0xEC ^ 0x11 {
		bits.appendUnchecked(uint32(padByte), 8)
	}

	out := bits.Bytes()
	if len(out) != capacityWords {
		return nil, LogicError("assembled codeword length mismatch")
	}
	return out, nil
}

// interleaveBlocks splits data into Reed–Solomon blocks, computes each
// block's ECC codewords and interleaves data and ECC blocks in the
// canonical column-major order spec.md §4.5 describes.
func interleaveBlocks(data []byte, version int, level Level) ([]byte, error) {
	numBlocks, blockECC := blockGeometry(version, level)
	raw, err := capacityBits(version)
	if err != nil {
		return nil, err
	}
	raw /= 8
	numShortBlocks := numBlocks - raw%numBlocks
	shortLen := raw / numBlocks

	divisor, err := gf256.Divisor(blockECC)
	if err != nil {
		return nil, &DomainError{"blockECC", err.Error()}
	}

	blocks := make([][]byte, numBlocks)
	k := 0
	for i := 0; i < numBlocks; i++ {
		n := shortLen - blockECC
		if i >= numShortBlocks {
			n++
		}
		block := append([]byte(nil), data[k:k+n]...)
		k += n
		ecc := gf256.Remainder(block, divisor)
		if i < numShortBlocks {
			block = append(block, 0) // pad short blocks in the data region only
		}
		block = append(block, ecc...)
		blocks[i] = block
	}

	result := make([]byte, 0, raw)
	longest := len(blocks[0])
	for i := 0; i < longest; i++ {
		for j := 0; j < numBlocks; j++ {
			if i == shortLen-blockECC && j < numShortBlocks {
				continue // skip the data pad byte
			}
			result = append(result, blocks[j][i])
		}
	}
	if len(result) != raw {
		return nil, LogicError("interleaved codeword length mismatch")
	}
	return result, nil
}
