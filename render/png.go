// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/png"
	"io"
)

// PNG writes sym to w as a PNG image at the given options.
func PNG(w io.Writer, sym Symbol, opts Options) error {
	img, err := Image(sym, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
