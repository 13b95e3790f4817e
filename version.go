// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

// MinVersion and MaxVersion bound the QR version range this package
// implements (Micro QR is out of scope).
const (
	MinVersion = 1
	MaxVersion = 40
)

// size returns the module count of a version-v symbol: N = 4V + 17.
func size(version int) int { return version*4 + 17 }

// capacityBits returns the total number of bits (data + ECC) a
// version-v symbol can hold, closed-form over the finder, timing,
// alignment, format and version reservations.
func capacityBits(version int) (int, error) {
	if version < MinVersion || version > MaxVersion {
		return 0, &DomainError{"version", "must be in [1, 40]"}
	}
	result := (16*version+128)*version + 64
	if version >= 2 {
		numAlign := version/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if version >= 7 {
			result -= 36
		}
	}
	return result, nil
}

// capacityCodewords returns the number of data codewords (excluding
// ECC) a version-v symbol can hold at the given error correction level.
func capacityCodewords(version int, level Level) (int, error) {
	bits, err := capacityBits(version)
	if err != nil {
		return 0, err
	}
	return bits/8 -
		int(eccCodewordsPerBlock[level][version])*
			int(numErrorCorrectionBlocks[level][version]), nil
}

// blockGeometry returns the number of Reed–Solomon blocks and the
// number of ECC codewords per block for (version, level).
func blockGeometry(version int, level Level) (numBlocks, eccPerBlock int) {
	return int(numErrorCorrectionBlocks[level][version]),
		int(eccCodewordsPerBlock[level][version])
}

// alignmentPositions returns the coordinates, ascending, at which
// alignment pattern centers fall along either axis of a version-v
// symbol.  Version 1 has no alignment patterns.
func alignmentPositions(version int) []int {
	if version == 1 {
		return nil
	}
	numAlign := version/7 + 2
	step := (version*8 + numAlign*3 + 5) / (numAlign*4 - 4) * 2
	sz := size(version)
	result := make([]int, 0, numAlign)
	for i, pos := 0, sz-7; i < numAlign-1; i, pos = i+1, pos-step {
		result = append([]int{pos}, result...)
	}
	result = append([]int{6}, result...)
	return result
}
