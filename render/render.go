// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a *qrcode.QrCode onto the outside world: PNG
// and WebP images, and a plain-text ASCII block rendering for
// terminals. Every function here reads a symbol only through its
// Size and Module methods, so it never touches the encoder's
// internals.
package render

import (
	"errors"
	"image"
	"image/color"
)

// A Symbol is the read-only view render needs of an encoded QR code.
// *qrcode.QrCode satisfies it.
type Symbol interface {
	Size() int
	Module(x, y int) bool
}

// ErrScale reports an invalid Scale or Border in an Options value.
var ErrScale = errors.New("render: scale must be >= 1 and border must be >= 0")

// Options controls how a symbol is rasterised.
type Options struct {
	Scale  int // pixels per module; must be >= 1
	Border int // quiet zone width in modules on each side; must be >= 0
}

// DefaultOptions matches the quiet zone ISO/IEC 18004 recommends and a
// modest pixel scale.
var DefaultOptions = Options{Scale: 8, Border: 4}

func (o Options) validate() error {
	if o.Scale < 1 || o.Border < 0 {
		return ErrScale
	}
	return nil
}

// Image rasterises sym into a black-and-white *image.Gray at the given
// options, with the quiet zone painted white.
func Image(sym Symbol, opts Options) (image.Image, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	sz := sym.Size()
	side := (sz + 2*opts.Border) * opts.Scale
	img := image.NewGray(image.Rect(0, 0, side, side))
	white := color.Gray{Y: 0xFF}
	for i := range img.Pix {
		img.Pix[i] = white.Y
	}
	black := color.Gray{Y: 0x00}
	for y := 0; y < sz; y++ {
		for x := 0; x < sz; x++ {
			if !sym.Module(x, y) {
				continue
			}
			px := (x + opts.Border) * opts.Scale
			py := (y + opts.Border) * opts.Scale
			for dy := 0; dy < opts.Scale; dy++ {
				for dx := 0; dx < opts.Scale; dx++ {
					img.SetGray(px+dx, py+dy, black)
				}
			}
		}
	}
	return img, nil
}
