// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "io"

// ASCII writes sym to w as a plain-text grid, two space or '#'
// characters per module so the result reads roughly square in a
// monospace terminal font.
func ASCII(w io.Writer, sym Symbol, border int) error {
	if border < 0 {
		return ErrScale
	}
	sz := sym.Size()
	side := sz + 2*border
	b := make([]byte, 0, (side*2+1)*side)
	for y := -border; y < sz+border; y++ {
		for x := -border; x < sz+border; x++ {
			p := byte(' ')
			if 0 <= x && x < sz && 0 <= y && y < sz && sym.Module(x, y) {
				p = '#'
			}
			b = append(b, p, p)
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}
