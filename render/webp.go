// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// WebP writes sym to w as a lossless WebP image at the given options.
func WebP(w io.Writer, sym Symbol, opts Options) error {
	img, err := Image(sym, opts)
	if err != nil {
		return err
	}
	return nativewebp.Encode(w, img, nil)
}
