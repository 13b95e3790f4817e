// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

// Penalty weights for the four scoring rules ISO/IEC 18004 §7.8.3 defines.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskBit evaluates mask formula m (0-7) at module coordinate (x, y).
func maskBit(m, x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		return false
	}
}

// applyMask XORs mask m into every non-reserved module. Calling it
// twice with the same m restores the original modules, since XOR is
// its own inverse.
func (c *QrCode) applyMask(m int) {
	sz := c.sz
	for y := 0; y < sz; y++ {
		for x := 0; x < sz; x++ {
			if c.reserved[y*sz+x] {
				continue
			}
			if maskBit(m, x, y) {
				c.modules[y*sz+x] = !c.modules[y*sz+x]
			}
		}
	}
}

// finalizeMask picks mask (or, if mask is -1, the mask with the lowest
// penalty score) and leaves it applied to c, with the corresponding
// format information drawn.
func (c *QrCode) finalizeMask(mask int) error {
	if mask == -1 {
		best, bestPenalty := 0, -1
		for i := 0; i < 8; i++ {
			if err := c.drawFormatBits(i); err != nil {
				return err
			}
			c.applyMask(i)
			p := c.penalty()
			if bestPenalty == -1 || p < bestPenalty {
				best, bestPenalty = i, p
			}
			c.applyMask(i) // undo
		}
		mask = best
	}
	if err := c.drawFormatBits(mask); err != nil {
		return err
	}
	c.applyMask(mask)
	c.mask = mask
	return nil
}

// penalty computes c's total penalty score across all four rules:
// same-color runs and finder-like patterns (rows then columns), 2x2
// blocks of one color, and the light/dark module balance.
func (c *QrCode) penalty() int {
	sz := c.sz
	result := 0

	for y := 0; y < sz; y++ {
		result += c.linePenalty(func(i int) bool { return c.module(i, y) }, sz)
	}
	for x := 0; x < sz; x++ {
		result += c.linePenalty(func(i int) bool { return c.module(x, i) }, sz)
	}

	for y := 0; y < sz-1; y++ {
		for x := 0; x < sz-1; x++ {
			v := c.module(x, y)
			if v == c.module(x+1, y) && v == c.module(x, y+1) && v == c.module(x+1, y+1) {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for _, v := range c.modules {
		if v {
			dark++
		}
	}
	total := sz * sz
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// linePenalty scores rule 1 (runs of 5+ same-colored modules) and rule
// 3 (1:1:3:1:1 finder-like patterns) along a single row or column of
// length n, addressed through at.
func (c *QrCode) linePenalty(at func(int) bool, n int) int {
	result := 0
	runColor := false
	runX := 0
	var history [7]int

	for x := 0; x < n; x++ {
		if at(x) == runColor {
			runX++
			if runX == 5 {
				result += penaltyN1
			} else if runX > 5 {
				result++
			}
		} else {
			finderPenaltyAddHistory(runX, &history, n)
			if !runColor {
				result += finderPenaltyCountPatterns(history) * penaltyN3
			}
			runColor = at(x)
			runX = 1
		}
	}
	result += finderPenaltyTerminateAndCount(runColor, runX, &history, n) * penaltyN3
	return result
}

// finderPenaltyAddHistory pushes currentRunLength onto the front of
// the 7-entry run-length history, padding the very first run with an
// implicit light border the width of the line.
func finderPenaltyAddHistory(currentRunLength int, history *[7]int, n int) {
	if history[0] == 0 {
		currentRunLength += n
	}
	copy(history[1:], history[:len(history)-1])
	history[0] = currentRunLength
}

// finderPenaltyCountPatterns counts how many of the two possible
// 1:1:3:1:1 finder-like patterns are present in history.
func finderPenaltyCountPatterns(history [7]int) int {
	n := history[1]
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

// finderPenaltyTerminateAndCount finishes a line's run history with an
// implicit light border and reports the resulting pattern count.
func finderPenaltyTerminateAndCount(currentRunColor bool, currentRunLength int, history *[7]int, n int) int {
	if currentRunColor {
		finderPenaltyAddHistory(currentRunLength, history, n)
		currentRunLength = 0
	}
	currentRunLength += n
	finderPenaltyAddHistory(currentRunLength, history, n)
	return finderPenaltyCountPatterns(*history)
}
