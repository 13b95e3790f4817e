// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import "testing"

func TestApplyMaskIsInvolution(t *testing.T) {
	c := newBlankSymbol(1, M)
	if err := c.drawFunctionPatterns(); err != nil {
		t.Fatalf("drawFunctionPatterns: %v", err)
	}
	before := append([]bool(nil), c.modules...)
	c.applyMask(3)
	c.applyMask(3)
	for i := range before {
		if c.modules[i] != before[i] {
			t.Fatalf("applyMask(3) applied twice did not restore module %d", i)
		}
	}
}

func TestFinderPenaltyCountPatterns(t *testing.T) {
	// A textbook 1:1:3:1:1 pattern bordered by light runs on both sides.
	history := [7]int{40, 10, 10, 30, 10, 10, 40}
	if got := finderPenaltyCountPatterns(history); got != 2 {
		t.Fatalf("finderPenaltyCountPatterns(%v) = %d, want 2", history, got)
	}
}

func TestFinderPenaltyCountPatternsRejectsShortBorder(t *testing.T) {
	history := [7]int{2, 10, 10, 30, 10, 10, 40}
	if got := finderPenaltyCountPatterns(history); got != 0 {
		t.Fatalf("finderPenaltyCountPatterns(%v) = %d, want 0", history, got)
	}
}

func TestPenaltyNonNegative(t *testing.T) {
	c := newBlankSymbol(1, M)
	if err := c.drawFunctionPatterns(); err != nil {
		t.Fatalf("drawFunctionPatterns: %v", err)
	}
	if p := c.penalty(); p < 0 {
		t.Fatalf("penalty() = %d, want >= 0", p)
	}
}
